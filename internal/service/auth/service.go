package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"shopmart-backend/internal/domain"
)

type Service struct {
	users      userRepo
	sessions   sessionRepo
	tokens     *tokenManager
	bcryptCost int
	logger     *logrus.Logger
}

type userRepo interface {
	Create(ctx context.Context, u domain.User, roles []domain.Role) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s domain.Session) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type Options struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	BcryptCost    int
}

func New(users userRepo, sessions sessionRepo, opts Options, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     newTokenManager(opts.AccessSecret, opts.RefreshSecret, opts.AccessTTL, opts.RefreshTTL),
		bcryptCost: cost,
		logger:     logger,
	}
}

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ClientMeta is recorded on the session row for auditing.
type ClientMeta struct {
	IP        string
	UserAgent string
}

type TokenPair struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *domain.User `json:"user"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput, meta ClientMeta) (*TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Create(ctx, domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
	}, []domain.Role{domain.RoleCustomer})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewError(409, "email already registered")
		}
		return nil, err
	}
	s.logger.WithField("userId", user.ID).Info("user registered")
	return s.issuePair(ctx, user, meta)
}

func (s *Service) Login(ctx context.Context, in LoginInput, meta ClientMeta) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Unauthorized("invalid credentials")
	}
	return s.issuePair(ctx, user, meta)
}

// Refresh rotates the session: the presented refresh token is matched against
// stored session hashes, the matching session is deleted and a new pair is
// issued with roles reloaded from the store.
func (s *Service) Refresh(ctx context.Context, in RefreshInput, meta ClientMeta) (*TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(in.RefreshToken)
	if err != nil {
		return nil, domain.Unauthorized("invalid refresh token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, domain.Unauthorized("invalid refresh token")
	}

	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	presented := hashToken(in.RefreshToken)
	var matched *domain.Session
	for i := range sessions {
		if subtle.ConstantTimeCompare([]byte(sessions[i].RefreshTokenHash), []byte(presented)) == 1 {
			matched = &sessions[i]
			break
		}
	}
	if matched == nil {
		return nil, domain.Unauthorized("invalid refresh token")
	}
	if err := s.sessions.Delete(ctx, matched.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Unauthorized("invalid refresh token")
		}
		return nil, err
	}
	return s.issuePair(ctx, user, meta)
}

// VerifyAccessToken validates an access token and returns its claims.
func (s *Service) VerifyAccessToken(token string) (*Claims, error) {
	claims, err := s.tokens.ParseAccess(token)
	if err != nil {
		return nil, domain.Unauthorized("invalid or expired token")
	}
	return claims, nil
}

func (s *Service) issuePair(ctx context.Context, user *domain.User, meta ClientMeta) (*TokenPair, error) {
	access, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user)
	if err != nil {
		return nil, err
	}

	// Refresh tokens are stored hashed so a leaked sessions table cannot be
	// replayed. SHA-256 rather than bcrypt: tokens exceed bcrypt's 72-byte
	// input limit and are high-entropy already.
	err = s.sessions.Create(ctx, domain.Session{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		RefreshTokenHash: hashToken(refresh),
		IP:               meta.IP,
		UserAgent:        meta.UserAgent,
		ExpiresAt:        time.Now().Add(s.tokens.refreshTTL),
	})
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
