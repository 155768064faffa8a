package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	stockroomserver "github.com/stockroom/stockroom-api/go"

	catalogmemory "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/stockroom/stockroom-api/internal/domains/catalog/application"
	catalogports "github.com/stockroom/stockroom-api/internal/domains/catalog/ports"

	ordersmemory "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/stockroom/stockroom-api/internal/domains/orders/application"
	ordersports "github.com/stockroom/stockroom-api/internal/domains/orders/ports"

	pickingobs "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/observability"
	pickingsources "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/sources"
	pickingworkflows "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/workflows"
	pickingapp "github.com/stockroom/stockroom-api/internal/domains/picking/application"
	pickingports "github.com/stockroom/stockroom-api/internal/domains/picking/ports"

	usermemory "github.com/stockroom/stockroom-api/internal/domains/users/adapters/memory"
	userobs "github.com/stockroom/stockroom-api/internal/domains/users/adapters/observability"
	userpostgres "github.com/stockroom/stockroom-api/internal/domains/users/adapters/persistence/postgres"
	userapp "github.com/stockroom/stockroom-api/internal/domains/users/application"
	userports "github.com/stockroom/stockroom-api/internal/domains/users/ports"

	warehousememory "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/memory"
	warehousepostgres "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/persistence/postgres"
	warehouseapp "github.com/stockroom/stockroom-api/internal/domains/warehouse/application"
	warehouseports "github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"

	"github.com/stockroom/stockroom-api/internal/platform/migrations"
	platformobservability "github.com/stockroom/stockroom-api/internal/platform/observability"
	platformpostgres "github.com/stockroom/stockroom-api/internal/platform/postgres"
)

// Run boots the stockroom HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "stockroom-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	repos := buildRepositories(db, cfg.SessionTTL, logger)

	catalogService := catalogobs.New(
		catalogapp.NewService(repos.products),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	warehouseService := warehouseapp.NewService(repos.locations)
	ordersService := ordersobs.New(
		ordersapp.NewService(repos.orders),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	userService := userobs.New(
		userapp.NewService(repos.users, repos.sessions),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)

	if purger, ok := repos.sessions.(sessionPurger); ok && cfg.SessionPurgeIntervalMinute > 0 {
		interval := time.Duration(cfg.SessionPurgeIntervalMinute) * time.Minute
		go purgeSessionsLoop(ctx, purger, interval, logger)
	}

	sources := pickingsources.NewRepositorySources(repos.orders, repos.products, repos.locations)
	pickingService := pickingobs.New(
		pickingapp.NewResolver(sources, sources, sources),
		pickingobs.WithLogger(logger),
		pickingobs.WithTracer(instruments.Tracer("internal.picking.application")),
		pickingobs.WithMeter(instruments.Meter("internal.picking.application")),
	)

	var pickWorkflows pickingports.WorkflowOrchestrator = pickingworkflows.NewInlinePickWorkflows(pickingService)
	if cfg.TemporalDisabled {
		logger.Info("Temporal disabled, generating pick lists inline")
	} else if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, generating pick lists inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		pickWorkflows = pickingworkflows.NewTemporalPickWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := stockroomserver.ApiHandleFunctions{
		CatalogAPI:   stockroomserver.NewCatalogAPI(catalogService),
		WarehouseAPI: stockroomserver.NewWarehouseAPI(warehouseService),
		OrdersAPI:    stockroomserver.NewOrdersAPI(ordersService),
		PickingAPI:   stockroomserver.NewPickingAPI(pickingService, pickWorkflows),
		UserAPI:      stockroomserver.NewUserAPI(userService),
	}

	router := stockroomserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("stockroom API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("stockroom API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type repositories struct {
	products  catalogports.Repository
	locations warehouseports.Repository
	orders    ordersports.Repository
	users     userports.Repository
	sessions  userports.SessionStore
}

func buildRepositories(db *gorm.DB, sessionTTL time.Duration, logger *slog.Logger) repositories {
	if db == nil {
		logger.Warn("using in-memory repositories, data will not survive restarts")
		return repositories{
			products:  catalogmemory.NewRepository(),
			locations: warehousememory.NewRepository(),
			orders:    ordersmemory.NewRepository(),
			users:     usermemory.NewRepository(),
			sessions:  usermemory.NewSessionStore(),
		}
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		products:  catalogpostgres.NewRepository(db),
		locations: warehousepostgres.NewRepository(db),
		orders:    orderspostgres.NewRepository(db),
		users:     userpostgres.NewRepository(db),
		sessions:  userpostgres.NewSessionStore(db, sessionTTL),
	}
}

// sessionPurger is satisfied by session stores that can evict expired rows.
type sessionPurger interface {
	PurgeExpired(ctx context.Context) error
}

func purgeSessionsLoop(ctx context.Context, purger sessionPurger, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := purger.PurgeExpired(ctx); err != nil {
				logger.Warn("session purge failed", slog.String("error", err.Error()))
			}
		}
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
