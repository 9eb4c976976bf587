package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"stayin/app/config"
	"stayin/app/driver/assets"
	"stayin/app/driver/kratos"
	"stayin/app/driver/postgres"
	"stayin/app/driver/redis"
	"stayin/app/gateway"
	"stayin/app/metrics"
	"stayin/app/port"
	"stayin/app/rest"
	"stayin/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client
	LocalStore   *redis.LocalStore
	Preloader    *assets.Preloader

	// Usecases
	SessionUsecase   *usecase.SessionUsecase
	AccountUsecase   port.AccountUsecase
	ReadinessUsecase *usecase.ReadinessUsecase
	Router           *usecase.Router
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	container.LocalStore = redis.NewLocalStore(cfg.RedisURL, logger)
	container.Preloader = assets.NewPreloader(cfg.AssetManifestURL, logger)

	// Initialize repository and gateways
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)
	profileGateway := gateway.NewProfileGateway(profileRepository, logger)

	kratosAdapter := kratos.NewAdapter(container.KratosClient, logger)
	credentialGateway := gateway.NewCredentialGateway(kratosAdapter, cfg.SessionPollInterval, logger)

	// Initialize usecases
	container.SessionUsecase = usecase.NewSessionUsecase(
		credentialGateway,
		profileGateway,
		cfg.ProfileFetchTimeout,
		logger,
	)
	container.AccountUsecase = usecase.NewAccountUsecase(credentialGateway, profileGateway, logger)
	container.ReadinessUsecase = usecase.NewReadinessUsecase(func() {
		metrics.SetReady()
	}, logger)
	container.Router = usecase.NewRouter(container.SessionUsecase, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// Start launches the long-lived background workers: the session state
// machine, the readiness join, and the navigation watcher.
func (c *Container) Start(ctx context.Context) {
	go func() {
		if err := c.SessionUsecase.Run(ctx); err != nil && ctx.Err() == nil {
			c.Logger.Error("session resolution stopped", "error", err)
		}
	}()

	go func() {
		tasks := usecase.StartupTasks{
			SessionSettled: c.SessionUsecase.Settled(),
			LocalStore:     c.LocalStore,
			Assets:         c.Preloader,
		}
		if err := c.ReadinessUsecase.Run(ctx, tasks); err != nil && ctx.Err() == nil {
			c.Logger.Error("startup join stopped", "error", err)
		}
	}()

	go c.Router.Run(ctx)
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:         c.Logger,
		AccountUsecase: c.AccountUsecase,
		SessionUsecase: c.SessionUsecase,
		Router:         c.Router,
		Readiness:      c.ReadinessUsecase,
		EnableMetrics:  c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.LocalStore != nil {
		if err := c.LocalStore.Close(); err != nil {
			c.Logger.Warn("Failed to close local store", "error", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	// Note: Kratos client doesn't need explicit cleanup

	c.Logger.Info("Container closed successfully")
	return nil
}
