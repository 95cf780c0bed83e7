package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sellerdesk-backend/internal/config"
	"sellerdesk-backend/internal/domains/department"
	departmentHandler "sellerdesk-backend/internal/domains/department/handler"
	departmentRepo "sellerdesk-backend/internal/domains/department/repository"
	departmentService "sellerdesk-backend/internal/domains/department/service"
	"sellerdesk-backend/internal/domains/seller"
	sellerHandler "sellerdesk-backend/internal/domains/seller/handler"
	sellerRepo "sellerdesk-backend/internal/domains/seller/repository"
	sellerService "sellerdesk-backend/internal/domains/seller/service"
	"sellerdesk-backend/internal/form"
	"sellerdesk-backend/internal/infrastructure/database"
	"sellerdesk-backend/internal/infrastructure/events"
)

// Container holds every dependency of the application.
// Build order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB // nil with the memory driver
	Redis  *events.RedisClient  // nil when redis is disabled

	// Repositories
	DepartmentRepo department.Repository
	SellerRepo     seller.Repository

	// Services
	DepartmentService department.Service
	SellerService     seller.Service
	Validator         *seller.FormValidator

	// Listeners notified after each seller save
	Listeners *form.Listeners

	// Handlers
	DepartmentHandler *departmentHandler.DepartmentHandler
	SellerHandler     *sellerHandler.SellerHandler
}

// NewContainer loads the configuration and builds the dependency graph
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewContainerWithConfig(cfg)
}

// NewContainerWithConfig builds the dependency graph from cfg
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Str("storage", cfg.Storage.Driver).Msg("initializing container")

	c := &Container{
		Config:    cfg,
		Listeners: &form.Listeners{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.initRepositories(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}

	c.initEvents(ctx)
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories(ctx context.Context) error {
	if c.Config.Storage.Driver != config.StoragePostgres {
		c.DepartmentRepo = departmentRepo.NewMemoryRepository()
		c.SellerRepo = sellerRepo.NewMemoryRepository()
		return nil
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := departmentRepo.EnsureSchema(ctx, db.Pool); err != nil {
		return err
	}
	if err := sellerRepo.EnsureSchema(ctx, db.Pool); err != nil {
		return err
	}

	c.DepartmentRepo = departmentRepo.NewPostgresRepository(db.Pool)
	c.SellerRepo = sellerRepo.NewPostgresRepository(db.Pool)
	return nil
}

// initEvents subscribes the redis notifier. Redis is not critical: a failed
// connection is logged and the app continues without change events.
func (c *Container) initEvents(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		return
	}

	client := events.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := client.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis connection failed (non-critical)")
		_ = client.Close()
		return
	}

	c.Redis = client
	c.Listeners.Subscribe(events.NewRedisNotifier(client.Client, c.Config.Redis.Channel))
}

func (c *Container) initServices() {
	c.DepartmentService = departmentService.NewDepartmentService(c.DepartmentRepo)
	c.SellerService = sellerService.NewSellerService(c.SellerRepo)
	c.Validator = seller.NewFormValidator(c.Config.Location())
}

func (c *Container) initHandlers() {
	c.DepartmentHandler = departmentHandler.NewDepartmentHandler(c.DepartmentService)
	c.SellerHandler = sellerHandler.NewSellerHandler(c.SellerService, c.DepartmentService, c.Validator, c.Listeners)
}

// HealthCheck verifies the configured backends
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{"storage": c.Config.Storage.Driver}
	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			status["database"] = "unhealthy: " + err.Error()
		} else {
			status["database"] = "healthy"
		}
	}
	if c.Redis != nil {
		if err := c.Redis.HealthCheck(ctx); err != nil {
			status["redis"] = "unhealthy: " + err.Error()
		} else {
			status["redis"] = "healthy"
		}
	}
	return status
}

// Cleanup releases infrastructure resources
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
}
