package ports

import (
	"context"
	"time"

	"github.com/trendlane/commerce-api/internal/core/domain"
)

// OrderFilter carries the resolved date window for listing orders.
// Zero bounds are open: From is inclusive, To is exclusive.
type OrderFilter struct {
	From time.Time
	To   time.Time
}

// OrderUpdate carries a partial field set for a full-update call.
// Nil fields are left untouched on the stored document.
type OrderUpdate struct {
	BillingDetails  *domain.BillingDetails
	OrderedProducts []domain.OrderedProduct
	ShippingInfo    *domain.ShippingInfo
	Summary         *domain.OrderSummary
	Status          *domain.OrderStatus
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Insert persists a new order and returns its generated identifier.
	Insert(ctx context.Context, order *domain.Order) (string, error)
	// List returns all orders within the filter window, newest first.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	// Update applies the non-nil fields of upd to the matching document and
	// returns the updated document. Returns domain.ErrOrderNotFound when the
	// identifier does not resolve.
	Update(ctx context.Context, id string, upd OrderUpdate) (*domain.Order, error)
	// Delete removes the matching document. Returns domain.ErrOrderNotFound
	// when the identifier does not resolve.
	Delete(ctx context.Context, id string) error
}
