package ports

import (
	"context"

	"github.com/trendlane/commerce-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the default user role. The role is
	// never taken from the caller.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
