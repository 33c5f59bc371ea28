package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/trendlane/commerce-api/internal/core/domain"
	"github.com/trendlane/commerce-api/internal/core/ports"
)

// OrderService implements the order use cases over an OrderRepository.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger, now: time.Now}
}

// PlaceOrder validates the creation invariants, applies defaults, and persists
// the order. Status always starts at Pending and orderDate is set server side.
func (s *OrderService) PlaceOrder(ctx context.Context, order *domain.Order) (string, error) {
	if err := order.ValidateForCreation(); err != nil {
		return "", err
	}

	order.Status = domain.StatusPending
	order.OrderDate = s.now().UTC()

	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to place order")
		return "", err
	}

	s.logger.Info().Str("order_id", id).Int("products", len(order.OrderedProducts)).Msg("order placed")
	return id, nil
}

// ListOrders returns every order inside the optional date window, newest
// first. The end date is inclusive of its whole calendar day, so the upper
// bound sent to the repository is endDate+24h, exclusive.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) ([]domain.Order, error) {
	filter := ports.OrderFilter{From: input.StartDate}
	if !input.EndDate.IsZero() {
		filter.To = input.EndDate.Add(24 * time.Hour)
	}

	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, err
	}
	return orders, nil
}

// UpdateOrder applies the supplied fields to the matching order. A status
// carried in the field set must be a member of the status enum; orderDate and
// the identifier are immutable and never part of the update.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if upd.OrderedProducts != nil && len(upd.OrderedProducts) == 0 {
		return nil, domain.ErrInvalidOrderData
	}

	order, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Msg("order updated")
	return order, nil
}

// UpdateOrderStatus sets only the status field. Membership in the status enum
// is checked here, before storage; no transition graph is enforced.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	if status == "" {
		return nil, domain.ErrMissingStatus
	}
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.repo.Update(ctx, id, ports.OrderUpdate{Status: &next})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("status", status).Msg("order status updated")
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
