package session

import (
	"context"

	"shopmart-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s domain.Session) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
