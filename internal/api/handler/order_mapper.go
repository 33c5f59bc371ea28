package handler

import (
	"github.com/trendlane/commerce-api/internal/core/domain"
	"github.com/trendlane/commerce-api/internal/core/ports"
)

// --- Request → domain / service input ---

func toDomainOrder(req createOrderRequest) *domain.Order {
	return &domain.Order{
		BillingDetails:  toBillingDetails(req.BillingDetails),
		OrderedProducts: toOrderedProducts(req.OrderedProducts),
		ShippingInfo:    domain.ShippingInfo{Type: req.ShippingInfo.Type, Cost: req.ShippingInfo.Cost},
		Summary:         toSummary(req.Summary),
	}
}

func toOrderUpdate(req updateOrderRequest) ports.OrderUpdate {
	upd := ports.OrderUpdate{}
	if req.BillingDetails != nil {
		bd := toBillingDetails(*req.BillingDetails)
		upd.BillingDetails = &bd
	}
	if req.OrderedProducts != nil {
		upd.OrderedProducts = toOrderedProducts(req.OrderedProducts)
	}
	if req.ShippingInfo != nil {
		upd.ShippingInfo = &domain.ShippingInfo{Type: req.ShippingInfo.Type, Cost: req.ShippingInfo.Cost}
	}
	if req.Summary != nil {
		sum := toSummary(*req.Summary)
		upd.Summary = &sum
	}
	if req.Status != nil {
		st := domain.OrderStatus(*req.Status)
		upd.Status = &st
	}
	return upd
}

func toBillingDetails(b billingDetailsRequest) domain.BillingDetails {
	return domain.BillingDetails{Name: b.Name, Phone: b.Phone, Address: b.Address}
}

func toOrderedProducts(items []orderedProductRequest) []domain.OrderedProduct {
	out := make([]domain.OrderedProduct, len(items))
	for i, p := range items {
		out[i] = domain.OrderedProduct{
			Image:    p.Image,
			Name:     p.Name,
			Price:    p.Price,
			Size:     p.Size,
			Color:    p.Color,
			Quantity: p.Quantity,
		}
	}
	return out
}

func toSummary(s orderSummaryRequest) domain.OrderSummary {
	return domain.OrderSummary{Subtotal: s.Subtotal, Total: s.Total, PaymentMethod: s.PaymentMethod}
}
