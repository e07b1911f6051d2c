package repositories

import (
	"context"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Users are never hard-deleted.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateUser(ctx context.Context, user domain.User) error
}
