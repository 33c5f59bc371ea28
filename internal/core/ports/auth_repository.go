package ports

import (
	"context"

	"github.com/trendlane/commerce-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
//
// FindByEmailWithPassword is the only read that includes the stored hash; it
// exists solely for credential verification at login.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
