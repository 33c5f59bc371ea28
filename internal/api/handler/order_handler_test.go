package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trendlane/commerce-api/internal/core/domain"
	"github.com/trendlane/commerce-api/internal/core/ports"
)

type stubOrderService struct {
	placeFn        func(ctx context.Context, order *domain.Order) (string, error)
	listFn         func(ctx context.Context, input ports.ListOrdersInput) ([]domain.Order, error)
	updateFn       func(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error)
	updateStatusFn func(ctx context.Context, id, status string) (*domain.Order, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, order *domain.Order) (string, error) {
	return s.placeFn(ctx, order)
}

func (s *stubOrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) ([]domain.Order, error) {
	return s.listFn(ctx, input)
}

func (s *stubOrderService) UpdateOrder(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	return s.updateFn(ctx, id, upd)
}

func (s *stubOrderService) UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	return s.updateStatusFn(ctx, id, status)
}

func (s *stubOrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOrderHandler_Create_Success(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		placeFn: func(_ context.Context, order *domain.Order) (string, error) {
			if len(order.OrderedProducts) != 1 || order.OrderedProducts[0].Name != "t-shirt" {
				t.Fatalf("unexpected products: %+v", order.OrderedProducts)
			}
			return "65a1b2c3", nil
		},
	}
	h := NewOrderHandler(stub)

	body := `{"billingDetails":{"name":"Rahim","phone":"017","address":"Dhaka"},` +
		`"orderedProducts":[{"name":"t-shirt","price":"450","quantity":2}],` +
		`"shippingInfo":{"type":"standard","cost":"60"},` +
		`"summary":{"subtotal":"900","total":"960","paymentMethod":"cod"}}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/orders", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["orderId"] != "65a1b2c3" {
		t.Fatalf("unexpected orderId: %v", resp["orderId"])
	}
	if resp["message"] != "Order placed successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestOrderHandler_Create_InvalidDataPassedThrough(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		placeFn: func(context.Context, *domain.Order) (string, error) {
			return "", domain.ErrInvalidOrderData
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/orders", `{"orderedProducts":[]}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidOrderData) {
		t.Fatalf("expected ErrInvalidOrderData, got %v", err)
	}
}

func TestOrderHandler_List_ParsesDateWindow(t *testing.T) {
	e := echo.New()
	var got ports.ListOrdersInput
	stub := &stubOrderService{
		listFn: func(_ context.Context, input ports.ListOrdersInput) ([]domain.Order, error) {
			got = input
			return []domain.Order{}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/orders/all?startDate=2024-01-01&endDate=2024-01-01", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.StartDate.Equal(want) || !got.EndDate.Equal(want) {
		t.Fatalf("unexpected window: %+v", got)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array body, got %q", rec.Body.String())
	}
}

func TestOrderHandler_List_BadDate(t *testing.T) {
	e := echo.New()
	h := NewOrderHandler(&stubOrderService{})

	c, _ := newJSONContext(e, http.MethodGet, "/api/orders/all?startDate=notadate", "")
	err := h.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestOrderHandler_Update_PartialFields(t *testing.T) {
	e := echo.New()
	var gotUpd ports.OrderUpdate
	stub := &stubOrderService{
		updateFn: func(_ context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
			if id != "abc" {
				t.Fatalf("unexpected id: %s", id)
			}
			gotUpd = upd
			return &domain.Order{ID: "abc", Status: domain.StatusPending}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodPut, "/api/orders/abc", `{"billingDetails":{"name":"Karim"}}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUpd.BillingDetails == nil || gotUpd.BillingDetails.Name != "Karim" {
		t.Fatalf("billingDetails not mapped: %+v", gotUpd.BillingDetails)
	}
	if gotUpd.OrderedProducts != nil || gotUpd.Status != nil || gotUpd.Summary != nil || gotUpd.ShippingInfo != nil {
		t.Fatalf("untouched fields must stay nil: %+v", gotUpd)
	}
}

func TestOrderHandler_Update_NotFoundPassedThrough(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		updateFn: func(context.Context, string, ports.OrderUpdate) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newJSONContext(e, http.MethodPut, "/api/orders/missing", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus_Success(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		updateStatusFn: func(_ context.Context, id, status string) (*domain.Order, error) {
			if id != "abc" || status != "Shipped" {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Order{ID: "abc", Status: domain.StatusShipped}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodPatch, "/api/orders/abc/status", `{"newStatus":"Shipped"}`)
	c.SetParamNames("orderId")
	c.SetParamValues("abc")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Order status updated successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestOrderHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "abc" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/orders/abc", "")
	c.SetParamNames("orderId")
	c.SetParamValues("abc")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["orderId"] != "abc" {
		t.Fatalf("unexpected orderId: %v", resp["orderId"])
	}
}

func TestOrderHandler_Delete_NotFoundPassedThrough(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		deleteFn: func(context.Context, string) error { return domain.ErrOrderNotFound },
	}
	h := NewOrderHandler(stub)

	c, _ := newJSONContext(e, http.MethodDelete, "/api/orders/missing", "")
	c.SetParamNames("orderId")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
