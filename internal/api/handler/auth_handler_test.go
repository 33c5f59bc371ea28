package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trendlane/commerce-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	getFn      func(ctx context.Context, id string) (*domain.User, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func newAuthEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, name, email, password string) (*domain.User, error) {
			if name != "Alice" || email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: "u1", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret1"}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user"] != "alice@example.com" || resp["name"] != "Alice" || resp["role"] != "user" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password must never appear in the response")
	}
}

func TestAuthHandler_Register_IgnoresSuppliedRole(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, name, email, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	// role field in the body is silently dropped by the schema
	body := `{"name":"Eve","email":"eve@example.com","password":"hunter22","role":"admin"}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "user" {
		t.Fatalf("expected role user, got %v", resp["role"])
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newAuthEcho()
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(e, http.MethodPost, "/api/auth/register", `{"name":"Bob"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e := newAuthEcho()
	h := NewAuthHandler(&stubAuthService{})

	body := `{"name":"Bob","email":"bob@example.com","password":"12345"}`
	c, _ := newJSONContext(e, http.MethodPost, "/api/auth/register", body)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "tok123", &domain.User{ID: "u1", Email: email, Name: "Carol", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"email":"carol@example.com","password":"s3cret1"}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" || resp["token"] != "tok123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object in response")
	}
	if user["id"] != "u1" || user["email"] != "carol@example.com" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassedThrough(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/auth/login", `{"email":"x@example.com","password":"nope"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		getFn: func(_ context.Context, id string) (*domain.User, error) {
			if id != "u1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: "u1", Email: "carol@example.com", Name: "Carol", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/auth/me", "")
	c.Set("user_id", "u1")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	e := newAuthEcho()
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(e, http.MethodGet, "/api/auth/me", "")
	err := h.Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_ListUsers_NoHashLeak(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u1", Email: "a@example.com", Name: "A", Role: domain.RoleAdmin, PasswordHash: "$2a$10$abc"},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/auth/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one user, got %d", len(resp))
	}
	for key := range resp[0] {
		if key == "password" || key == "passwordHash" {
			t.Fatalf("hash leaked under key %q", key)
		}
	}
}
