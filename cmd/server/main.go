package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	_ "github.com/taller/store-api/docs" // swagger docs

	"github.com/taller/store-api/internal/api"
	"github.com/taller/store-api/internal/api/handler"
	"github.com/taller/store-api/internal/core/ports"
	"github.com/taller/store-api/internal/core/service"
	"github.com/taller/store-api/internal/infrastructure/config"
	"github.com/taller/store-api/internal/infrastructure/db/mongo"
	"github.com/taller/store-api/internal/infrastructure/db/postgres"
	"github.com/taller/store-api/internal/infrastructure/db/redis"
	"github.com/taller/store-api/internal/infrastructure/queue"
	"github.com/taller/store-api/internal/infrastructure/security"
	"github.com/taller/store-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Store API
// @version                     1.0
// @description                 Store, inventory and sales backend with administrator, customer and employee authentication.
// @BasePath                    /
// @schemes                     http
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT returned by /auth/login.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "store-api: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		File:    cfg.LogFile,
		Service: "store-api",
	})
	defer func() { _ = logger.Close() }()

	// --- Backing stores ---
	pg, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := postgres.Close(pg); err != nil {
			log.Warn().Err(err).Msg("postgres close")
		}
	}()
	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(pg); err != nil {
			return err
		}
		log.Info().Msg("postgres schema migrated")
	}

	mongoClient, auditDB, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "store-api",
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongo.Disconnect(mongoClient, shutdownTimeout); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	// --- Security ---
	hasher := security.NewArgon2Hasher(security.DefaultArgon2Params)
	tokens, err := security.NewTokenIssuer(security.TokenConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.ExpiresIn,
	})
	if err != nil {
		return err
	}

	// --- Repositories ---
	admins := postgres.NewAdminRepository(pg)
	customers := postgres.NewCustomerRepository(pg)
	employees := postgres.NewEmployeeRepository(pg)
	stores := postgres.NewStoreRepository(pg)
	products := postgres.NewProductRepository(pg)
	suppliers := postgres.NewSupplierRepository(pg)
	inventory := postgres.NewInventoryRepository(pg)
	sales := postgres.NewSaleRepository(pg)
	details := postgres.NewSaleDetailRepository(pg)

	auditRepo := mongo.NewAuditRepository(auditDB)
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("audit indexes not ensured")
	}

	// --- Audit dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, logger.Component("audit"))
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(
		[]ports.CredentialProvider{admins, customers, employees},
		customers, hasher, tokens, logger.Component("auth"),
	)
	svcLog := logger.Component("service")
	saleService := service.NewSaleService(sales, details, customers, employees, stores, dispatcher, svcLog)

	e := api.NewRouter(api.Dependencies{
		Auth:        authService,
		Admins:      service.NewAdminService(admins, hasher, dispatcher, svcLog),
		Customers:   service.NewCustomerService(customers, hasher, dispatcher, svcLog),
		Employees:   service.NewEmployeeService(employees, stores, hasher, dispatcher, svcLog),
		Stores:      service.NewStoreService(stores, employees, dispatcher, svcLog),
		Products:    service.NewProductService(products, suppliers, dispatcher, svcLog),
		Suppliers:   service.NewSupplierService(suppliers, dispatcher, svcLog),
		Inventory:   service.NewInventoryService(inventory, products, stores, dispatcher, svcLog),
		Sales:       saleService,
		SaleDetails: service.NewSaleDetailService(details, products, saleService, dispatcher, svcLog),
		Audit:       auditRepo,

		Idempotency:    redis.NewIdempotencyStore(rdb),
		IdempotencyTTL: cfg.IdempotencyTTL,

		HealthChecks: map[string]handler.HealthCheck{
			"postgres": func(ctx context.Context) error {
				sqlDB, err := pg.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			"mongodb": func(ctx context.Context) error {
				return mongo.Ping(ctx, mongoClient)
			},
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
		Log: logger.Component("http"),
	})

	// --- Serve until signalled ---
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			stopDispatcher(dispatcher, log)
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	stopDispatcher(dispatcher, log)

	log.Info().Msg("shutdown complete")
	return nil
}

func stopDispatcher(d *queue.Dispatcher, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		log.Warn().Err(err).Msg("audit dispatcher did not drain")
	}
}
