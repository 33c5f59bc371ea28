package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/trendlane/commerce-api/docs"
	"github.com/trendlane/commerce-api/internal/api/handler"
	"github.com/trendlane/commerce-api/internal/api/middleware"
	"github.com/trendlane/commerce-api/internal/core/domain"
	"github.com/trendlane/commerce-api/internal/core/service"
	mongodb "github.com/trendlane/commerce-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Cross-origin access is unrestricted: the storefront and dashboard are
	// served from separate origins.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	orderRepo := mongodb.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, log)
	orderHandler := handler.NewOrderHandler(orderService)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)
	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Order routes ---
	orders := e.Group("/api/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("/all", orderHandler.List)
	orders.PUT("/:id", orderHandler.Update)
	orders.PATCH("/:orderId/status", orderHandler.UpdateStatus)
	orders.DELETE("/:orderId", orderHandler.Delete)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.GET("/users", authHandler.ListUsers, authRequired, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
