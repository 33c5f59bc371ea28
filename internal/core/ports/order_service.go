package ports

import (
	"context"
	"time"

	"github.com/trendlane/commerce-api/internal/core/domain"
)

// ListOrdersInput carries the optional date bounds from the list endpoint.
// EndDate marks a calendar day: the service extends it to cover the whole day.
type ListOrdersInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// OrderService defines the use-case operations for orders.
type OrderService interface {
	// PlaceOrder validates and persists a new order, returning its identifier.
	PlaceOrder(ctx context.Context, order *domain.Order) (string, error)
	ListOrders(ctx context.Context, input ListOrdersInput) ([]domain.Order, error)
	// UpdateOrder replaces the supplied fields on the matching order and
	// returns the updated document.
	UpdateOrder(ctx context.Context, id string, upd OrderUpdate) (*domain.Order, error)
	// UpdateOrderStatus sets only the status field.
	UpdateOrderStatus(ctx context.Context, id string, status string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}
