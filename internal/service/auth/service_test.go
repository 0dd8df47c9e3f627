package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopmart-backend/internal/domain"
)

type stubUserRepo struct {
	created    *domain.User
	createErr  error
	lastRoles  []domain.Role
	byEmail    *domain.User
	byEmailErr error
	byID       *domain.User
	byIDErr    error
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User, roles []domain.Role) (*domain.User, error) {
	s.lastRoles = roles
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := u
	created.ID = 1
	created.Roles = []string{string(domain.RoleCustomer)}
	s.created = &created
	return &created, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return s.byID, s.byIDErr
}

type stubSessionRepo struct {
	sessions []domain.Session
	deleted  []string
}

func (s *stubSessionRepo) Create(_ context.Context, sess domain.Session) error {
	s.sessions = append(s.sessions, sess)
	return nil
}

func (s *stubSessionRepo) ListByUser(_ context.Context, userID int64) ([]domain.Session, error) {
	var out []domain.Session
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (s *stubSessionRepo) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestService(users *stubUserRepo, sessions *stubSessionRepo) *Service {
	return New(users, sessions, Options{
		AccessSecret:  "test-access",
		RefreshSecret: "test-refresh",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, nil)
}

func TestSignupAssignsCustomerRoleAndIssuesTokens(t *testing.T) {
	users := &stubUserRepo{}
	sessions := &stubSessionRepo{}
	svc := newTestService(users, sessions)

	pair, err := svc.Signup(context.Background(), SignupInput{
		Email: "jo@example.com", Password: "secret-password", Name: "Jo",
	}, ClientMeta{IP: "127.0.0.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.lastRoles) != 1 || users.lastRoles[0] != domain.RoleCustomer {
		t.Fatalf("expected CUSTOMER role, got %v", users.lastRoles)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected token pair")
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions.sessions))
	}
	if sessions.sessions[0].RefreshTokenHash == pair.RefreshToken {
		t.Fatal("refresh token must be stored hashed")
	}

	claims, err := svc.VerifyAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != 1 {
		t.Fatalf("claims subject = %v (%v)", id, err)
	}
	if !domain.HasAnyRole(claims.Roles, domain.RoleCustomer) {
		t.Fatalf("claims roles = %v", claims.Roles)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := &stubUserRepo{createErr: domain.ErrAlreadyExists}
	svc := newTestService(users, &stubSessionRepo{})
	_, err := svc.Signup(context.Background(), SignupInput{Email: "jo@example.com", Password: "secret-password", Name: "Jo"}, ClientMeta{})
	if err == nil || domain.StatusOf(err) != 409 {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	users := &stubUserRepo{byEmail: &domain.User{ID: 1, Email: "jo@example.com", PasswordHash: string(hash)}}
	svc := newTestService(users, &stubSessionRepo{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "jo@example.com", Password: "wrong"}, ClientMeta{})
	if err == nil || domain.StatusOf(err) != 401 {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	users := &stubUserRepo{byEmailErr: domain.ErrNotFound}
	svc := newTestService(users, &stubSessionRepo{})
	_, err := svc.Login(context.Background(), LoginInput{Email: "who@example.com", Password: "x"}, ClientMeta{})
	if err == nil || domain.StatusOf(err) != 401 {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	user := &domain.User{ID: 1, Email: "jo@example.com", PasswordHash: string(hash), Roles: []string{"CUSTOMER"}}
	users := &stubUserRepo{byEmail: user, byID: user}
	sessions := &stubSessionRepo{}
	svc := newTestService(users, sessions)

	pair, err := svc.Login(context.Background(), LoginInput{Email: "jo@example.com", Password: "right-password"}, ClientMeta{})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	oldSessionID := sessions.sessions[0].ID

	next, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: pair.RefreshToken}, ClientMeta{})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatal("expected fresh token pair")
	}
	if len(sessions.deleted) != 1 || sessions.deleted[0] != oldSessionID {
		t.Fatalf("old session not rotated out: %v", sessions.deleted)
	}
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := newTestService(&stubUserRepo{}, &stubSessionRepo{})
	_, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: "not-a-jwt"}, ClientMeta{})
	if err == nil || domain.StatusOf(err) != 401 {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	// Access and refresh tokens are signed with different secrets; an access
	// token must never pass the refresh path.
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	user := &domain.User{ID: 1, Email: "jo@example.com", PasswordHash: string(hash)}
	users := &stubUserRepo{byEmail: user, byID: user}
	sessions := &stubSessionRepo{}
	svc := newTestService(users, sessions)

	pair, err := svc.Login(context.Background(), LoginInput{Email: "jo@example.com", Password: "right-password"}, ClientMeta{})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	_, err = svc.Refresh(context.Background(), RefreshInput{RefreshToken: pair.AccessToken}, ClientMeta{})
	if err == nil || domain.StatusOf(err) != 401 {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	users := &stubUserRepo{}
	svc := New(users, &stubSessionRepo{}, Options{
		AccessSecret:  "test-access",
		RefreshSecret: "test-refresh",
		AccessTTL:     -time.Minute,
		RefreshTTL:    time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, nil)

	pair, err := svc.Signup(context.Background(), SignupInput{Email: "jo@example.com", Password: "secret-password", Name: "Jo"}, ClientMeta{})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, err := svc.VerifyAccessToken(pair.AccessToken); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
