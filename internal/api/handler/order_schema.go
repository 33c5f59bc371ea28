package handler

// messageResponse is the canonical envelope for message-bearing responses.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type billingDetailsRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type orderedProductRequest struct {
	Image    string `json:"image"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

type shippingInfoRequest struct {
	Type string `json:"type"`
	Cost string `json:"cost"`
}

type orderSummaryRequest struct {
	Subtotal      string `json:"subtotal"`
	Total         string `json:"total"`
	PaymentMethod string `json:"paymentMethod"`
}

type createOrderRequest struct {
	BillingDetails  billingDetailsRequest   `json:"billingDetails"`
	OrderedProducts []orderedProductRequest `json:"orderedProducts"`
	ShippingInfo    shippingInfoRequest     `json:"shippingInfo"`
	Summary         orderSummaryRequest     `json:"summary"`
}

// updateOrderRequest carries a partial field set: nil groups are left
// untouched on the stored document.
type updateOrderRequest struct {
	BillingDetails  *billingDetailsRequest  `json:"billingDetails"`
	OrderedProducts []orderedProductRequest `json:"orderedProducts"`
	ShippingInfo    *shippingInfoRequest    `json:"shippingInfo"`
	Summary         *orderSummaryRequest    `json:"summary"`
	Status          *string                 `json:"status"`
}

type updateStatusRequest struct {
	NewStatus string `json:"newStatus"`
}

// --- Response types ---

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type orderResponse struct {
	Message string `json:"message"`
	Order   any    `json:"order"`
}

type deleteOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}
