package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogmemory "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogports "github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
	ordersmemory "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/memory"
	orderspostgres "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/persistence/postgres"
	ordersports "github.com/stockroom/stockroom-api/internal/domains/orders/ports"
	pickingobs "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/observability"
	pickingsources "github.com/stockroom/stockroom-api/internal/domains/picking/adapters/sources"
	pickingapp "github.com/stockroom/stockroom-api/internal/domains/picking/application"
	warehousememory "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/memory"
	warehousepostgres "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/persistence/postgres"
	warehouseports "github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
	pickactivities "github.com/stockroom/stockroom-api/internal/durable/temporal/activities/picking"
	pickworkflows "github.com/stockroom/stockroom-api/internal/durable/temporal/workflows/picking"
	"github.com/stockroom/stockroom-api/internal/platform/migrations"
	platformobservability "github.com/stockroom/stockroom-api/internal/platform/observability"
	platformpostgres "github.com/stockroom/stockroom-api/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "stockroom-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orderRepo, productRepo, locationRepo, cleanupRepos := buildRepositories(ctx, logger)
	defer cleanupRepos()

	sources := pickingsources.NewRepositorySources(orderRepo, productRepo, locationRepo)
	resolver := pickingobs.New(
		pickingapp.NewResolver(sources, sources, sources),
		pickingobs.WithLogger(logger),
		pickingobs.WithTracer(instruments.Tracer("internal.picking.application")),
		pickingobs.WithMeter(instruments.Meter("internal.picking.application")),
	)
	activities := pickactivities.NewActivities(resolver)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, pickworkflows.PickListTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(pickworkflows.PickListWorkflow, workflow.RegisterOptions{Name: pickworkflows.PickListWorkflowName})
	w.RegisterActivityWithOptions(activities.GeneratePickList, activity.RegisterOptions{Name: pickactivities.GeneratePickListActivityName})

	logger.Info("worker listening", slog.String("taskQueue", pickworkflows.PickListTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildRepositories(ctx context.Context, logger *slog.Logger) (ordersports.Repository, catalogports.Repository, warehouseports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		logger.Warn("worker using in-memory repositories")
		return ordersmemory.NewRepository(), catalogmemory.NewRepository(), warehousememory.NewRepository(), cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Error("worker failed to run migrations", slog.String("error", err.Error()))
		cleanup()
		os.Exit(1)
	}
	logger.Info("worker repositories configured with postgres")
	return orderspostgres.NewRepository(db), catalogpostgres.NewRepository(db), warehousepostgres.NewRepository(db), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
