package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"

	"lottery-system/config"
	"lottery-system/internal/services"
	"lottery-system/internal/store"
	"lottery-system/monitoring"
	"lottery-system/utils"
)

func Start() error {
	// Load configuration
	cfg := config.LoadConfig()
	setupLogger(cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Redis when it backs the store
	var redisClient *redis.Client
	if store.Backend(cfg.StoreBackend) == store.BackendRedis {
		client, err := utils.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		redisClient = client
	}

	st, closeStore, err := store.Open(ctx, store.Backend(cfg.StoreBackend), store.Options{
		Dir:         cfg.StoreDir,
		DSN:         cfg.SQLiteDSN,
		RedisClient: redisClient,
		RedisPrefix: cfg.RedisKeyPrefix,
		Guard:       true,
	})
	if err != nil {
		if redisClient != nil {
			redisClient.Close()
		}
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	// The store owns the redis client from here on.
	defer func() {
		if err := closeStore(); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	var monitor *monitoring.Monitor
	if cfg.EnableMetrics {
		monitor = monitoring.NewMonitor()
	}

	// Initialize PubNub
	var notifier services.Notifier
	if cfg.NotificationsEnabled() {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey

		notifier = services.NewPubNubNotifier(pubnub.NewPubNub(pnConfig))
	}

	state, err := services.NewAppState(ctx, st, services.Options{
		DefaultWalletBalance: cfg.DefaultWalletBalance,
		PurchaseDelay:        utils.FixedDelay(cfg.PurchaseDelay),
		CheckDelay:           utils.FixedDelay(cfg.CheckDelay),
		Notifier:             notifier,
		Monitor:              monitor,
	})
	if err != nil {
		return fmt.Errorf("failed to load application state: %w", err)
	}

	stats := state.Session.Stats()
	slog.Info("Application state loaded",
		"store", cfg.StoreBackend,
		"users", len(state.Session.Users()),
		"tickets", stats.Tickets,
		"draws", len(state.Catalog.Draws()),
		"inventory", len(state.Catalog.Inventory()),
		"authenticated", state.Session.IsAuthenticated(),
	)

	if !cfg.EnableMetrics {
		log.Println("Metrics disabled, nothing left to serve")
		return nil
	}

	server := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           newRouter(st, redisClient),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Setup graceful shutdown
	go handleShutdown(cancel)
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down metrics server", "error", err)
		}
	}()

	log.Printf("Serving metrics on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRouter(st store.Store, redisClient *redis.Client) *echo.Echo {
	e := echo.New()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		if err := healthCheck(c.Request().Context(), st, redisClient); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	return e
}

func healthCheck(ctx context.Context, st store.Store, redisClient *redis.Client) error {
	if redisClient != nil {
		if err := utils.RedisHealthCheck(redisClient); err != nil {
			return err
		}
	}
	if guarded, ok := st.(*store.GuardedStore); ok && guarded.State() == utils.StateOpen {
		return store.ErrStoreUnavailable
	}
	if _, err := st.Get(ctx, store.KeyUsers); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func setupLogger(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
