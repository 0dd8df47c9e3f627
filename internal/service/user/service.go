package user

import (
	"context"

	"shopmart-backend/internal/domain"
	userrepo "shopmart-backend/internal/repository/user"
)

type Service struct {
	repo userRepo
}

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, in userrepo.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

func New(repo userRepo) *Service {
	return &Service{repo: repo}
}

type UpdateInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// Get returns the target user when the requester is the user themselves or
// holds an admin role.
func (s *Service) Get(ctx context.Context, requesterID int64, requesterRoles []string, id int64) (*domain.User, error) {
	if err := authorize(requesterID, requesterRoles, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, requesterID int64, requesterRoles []string, id int64, in UpdateInput) (*domain.User, error) {
	if err := authorize(requesterID, requesterRoles, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, userrepo.UpdateInput{
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
	})
}

func (s *Service) Delete(ctx context.Context, requesterID int64, requesterRoles []string, id int64) error {
	if err := authorize(requesterID, requesterRoles, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func authorize(requesterID int64, requesterRoles []string, targetID int64) error {
	if requesterID == targetID || domain.HasAnyRole(requesterRoles, domain.AdminRoles...) {
		return nil
	}
	return domain.Forbidden("insufficient permissions")
}
