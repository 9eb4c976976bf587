package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stayin/app/domain"
	"stayin/app/port"
	"stayin/app/rest/handlers"
	custommw "stayin/app/rest/middleware"
	"stayin/app/usecase"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AccountUsecase port.AccountUsecase
	SessionUsecase port.SessionUsecase
	Router         *usecase.Router
	Readiness      port.ReadinessReader
	EnableMetrics  bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AccountUsecase, config.SessionUsecase, config.Logger)
	sessionHandler := handlers.NewSessionHandler(config.SessionUsecase, config.Router, config.Readiness, config.Logger)
	treeHandler := handlers.NewTreeHandler(config.SessionUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Readiness, config.Logger)

	// Create middleware
	guard := custommw.NewGuardMiddleware(config.SessionUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Credential endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/recovery", authHandler.Recovery)

	// Session endpoints
	v1.GET("/session", sessionHandler.GetSession)
	v1.POST("/session/refresh", sessionHandler.Refresh)
	v1.GET("/home", sessionHandler.Home)
	v1.GET("/welcome", sessionHandler.Welcome)
	v1.GET("/startup/notices", sessionHandler.StartupNotices)

	// Role trees: each group re-validates the snapshot on entry
	tenant := v1.Group("/tenant", guard.RequireTree(domain.DestinationTenant))
	tenant.GET("/dashboard", treeHandler.TenantDashboard)

	landlord := v1.Group("/landlord", guard.RequireTree(domain.DestinationLandlord))
	landlord.GET("/dashboard", treeHandler.LandlordDashboard)

	admin := v1.Group("/admin", guard.RequireTree(domain.DestinationAdmin))
	admin.GET("/dashboard", treeHandler.AdminDashboard)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
