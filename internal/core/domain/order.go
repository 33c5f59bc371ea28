package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// orderStatuses is the closed set of valid status values. No transition graph
// is enforced: any status may follow any other.
var orderStatuses = map[OrderStatus]struct{}{
	StatusPending:    {},
	StatusProcessing: {},
	StatusShipped:    {},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// Valid reports whether s is a member of the status enum.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrderData = errors.New("invalid order data: missing billing details or products")
var ErrInvalidStatus = errors.New("invalid order status")
var ErrMissingStatus = errors.New("new status is required")

// BillingDetails holds the free-text billing contact for an order.
type BillingDetails struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// OrderedProduct is a single line item on an order. Price is carried as a
// string, matching what the storefront submits.
type OrderedProduct struct {
	Image    string `json:"image" bson:"image"`
	Name     string `json:"name" bson:"name"`
	Price    string `json:"price" bson:"price"`
	Size     string `json:"size" bson:"size"`
	Color    string `json:"color" bson:"color"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// ShippingInfo describes the selected shipping option.
type ShippingInfo struct {
	Type string `json:"type" bson:"type"`
	Cost string `json:"cost" bson:"cost"`
}

// OrderSummary carries the storefront-computed totals. The server does not
// recompute or cross-check them against the line items.
type OrderSummary struct {
	Subtotal      string `json:"subtotal" bson:"subtotal"`
	Total         string `json:"total" bson:"total"`
	PaymentMethod string `json:"paymentMethod" bson:"paymentMethod"`
}

// Order is the aggregate persisted in the orders collection.
type Order struct {
	ID              string           `json:"_id" bson:"_id,omitempty"`
	BillingDetails  BillingDetails   `json:"billingDetails" bson:"billingDetails"`
	OrderedProducts []OrderedProduct `json:"orderedProducts" bson:"orderedProducts"`
	ShippingInfo    ShippingInfo     `json:"shippingInfo" bson:"shippingInfo"`
	Summary         OrderSummary     `json:"summary" bson:"summary"`
	Status          OrderStatus      `json:"status" bson:"status"`
	OrderDate       time.Time        `json:"orderDate" bson:"orderDate"`
}

// ValidateForCreation enforces the creation invariants: non-empty billing
// details and at least one ordered product.
func (o *Order) ValidateForCreation() error {
	if o.BillingDetails == (BillingDetails{}) || len(o.OrderedProducts) == 0 {
		return ErrInvalidOrderData
	}
	return nil
}
