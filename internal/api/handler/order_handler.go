package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trendlane/commerce-api/internal/api/metrics"
	"github.com/trendlane/commerce-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.PlaceOrder(c.Request().Context(), toDomainOrder(req))
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createOrderResponse{
		Message: "Order placed successfully!",
		OrderID: id,
	})
}

// List handles GET /api/orders/all.
//
// @Summary      List orders, optionally within a date window
// @Tags         orders
// @Produce      json
// @Param        startDate  query     string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        endDate    query     string  false  "Inclusive day upper bound (YYYY-MM-DD)"
// @Success      200        {array}   domain.Order
// @Failure      400        {object}  messageResponse
// @Failure      500        {object}  messageResponse
// @Router       /api/orders/all [get]
func (h *OrderHandler) List(c echo.Context) error {
	var input ports.ListOrdersInput

	if raw := c.QueryParam("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
		}
		input.StartDate = t
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
		}
		input.EndDate = t
	}

	orders, err := h.service.ListOrders(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Update handles PUT /api/orders/:id — partial replace of supplied fields.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order identifier"
// @Param        body  body      updateOrderRequest  true  "Fields to replace"
// @Success      200   {object}  orderResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.UpdateOrder(c.Request().Context(), c.Param("id"), toOrderUpdate(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse{
		Message: "Order updated successfully",
		Order:   order,
	})
}

// UpdateStatus handles PATCH /api/orders/:orderId/status.
//
// @Summary      Update only the order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderId  path      string               true  "Order identifier"
// @Param        body     body      updateStatusRequest  true  "Target status"
// @Success      200      {object}  orderResponse
// @Failure      400      {object}  messageResponse
// @Failure      404      {object}  messageResponse
// @Failure      500      {object}  messageResponse
// @Router       /api/orders/{orderId}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.UpdateOrderStatus(c.Request().Context(), c.Param("orderId"), req.NewStatus)
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(req.NewStatus).Inc()
	return c.JSON(http.StatusOK, orderResponse{
		Message: "Order status updated successfully!",
		Order:   order,
	})
}

// Delete handles DELETE /api/orders/:orderId.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        orderId  path      string  true  "Order identifier"
// @Success      200      {object}  deleteOrderResponse
// @Failure      404      {object}  messageResponse
// @Failure      500      {object}  messageResponse
// @Router       /api/orders/{orderId} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id := c.Param("orderId")
	if err := h.service.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.OrdersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteOrderResponse{
		Message: "Order deleted successfully!",
		OrderID: id,
	})
}

// parseDate accepts the dashboard's plain date form first, falling back to
// RFC 3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
