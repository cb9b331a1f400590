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

	pizzaserver "github.com/slicelab/pizza-store-api/go"

	cartmemory "github.com/slicelab/pizza-store-api/internal/domains/cart/adapters/memory"
	cartapp "github.com/slicelab/pizza-store-api/internal/domains/cart/application"
	catalogdomain "github.com/slicelab/pizza-store-api/internal/domains/catalog/domain"
	ordersevents "github.com/slicelab/pizza-store-api/internal/domains/orders/adapters/events"
	ordersmemory "github.com/slicelab/pizza-store-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/slicelab/pizza-store-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/slicelab/pizza-store-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/slicelab/pizza-store-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/slicelab/pizza-store-api/internal/domains/orders/application"
	ordersports "github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
	"github.com/slicelab/pizza-store-api/internal/platform/migrations"
	platformobservability "github.com/slicelab/pizza-store-api/internal/platform/observability"
	platformpostgres "github.com/slicelab/pizza-store-api/internal/platform/postgres"
)

// Run boots the pizza store HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "pizza-store-api"
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

	menu := catalogdomain.DefaultMenu()

	cartStore := cartmemory.NewStore()
	cartService := cartapp.NewService(menu, cartStore)
	if cfg.CartPurgeIntervalMinutes > 0 {
		go purgeIdleCarts(ctx, logger, cartStore, time.Duration(cfg.CartPurgeIntervalMinutes)*time.Minute)
	}

	orderRepo, cleanupRepo := buildOrderRepository(ctx, cfg, logger)
	defer cleanupRepo()

	orderOptions := []ordersapp.Option{ordersapp.WithLogger(logger)}
	if publisher := ordersevents.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic); publisher != nil {
		defer publisher.Close()
		orderOptions = append(orderOptions, ordersapp.WithEventPublisher(publisher))
		logger.Info("order events enabled", slog.String("brokers", cfg.KafkaBrokers))
	}
	coreOrderService := ordersapp.NewService(orderRepo, orderOptions...)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := pizzaserver.ApiHandleFunctions{
		MenuAPI:  pizzaserver.NewMenuAPI(menu),
		CartAPI:  pizzaserver.NewCartAPI(cartService),
		OrderAPI: pizzaserver.NewOrderAPI(cartService, orderService, orderWorkflows),
	}

	router := pizzaserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("pizza store API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("pizza store API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildOrderRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.Repository, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory order repository")
		return ordersmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return ordersmemory.NewRepository(), func() {}
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

func purgeIdleCarts(ctx context.Context, logger *slog.Logger, store *cartmemory.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := store.PurgeIdle(ctx, interval); purged > 0 {
				logger.Info("purged idle carts", slog.Int("count", purged))
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
