package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/smartpark/internal/config"
	"github.com/kirinyoku/smartpark/internal/redis"
	redisrepo "github.com/kirinyoku/smartpark/internal/repository/redis"
	"github.com/kirinyoku/smartpark/internal/repository/static"
	"github.com/kirinyoku/smartpark/internal/service"
	"github.com/kirinyoku/smartpark/internal/service/parking"
	"github.com/kirinyoku/smartpark/internal/service/permits"
	httpgin "github.com/kirinyoku/smartpark/internal/transport/http/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	rdb        *goredis.Client
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	gin.SetMode(cfg.Server.GinMode)

	// The cache is optional; without an address the services load directly.
	var (
		rdb   *goredis.Client
		cache *redisrepo.Cache
	)
	if cfg.Redis.Enabled() {
		var err error
		rdb, err = redis.New(context.Background(), redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		cache = redisrepo.New(rdb)
	}

	store := static.NewStore()

	services := service.NewServices(store, cache, service.Config{
		Parking: parking.Config{
			AvailabilityTTL: cfg.Redis.TTL,
			RefreshDelay:    cfg.Delays.Refresh,
		},
		Permits: permits.Config{
			ProcessingDelay: cfg.Delays.Processing,
		},
	})

	router, err := httpgin.NewRouter(services, httpgin.Options{
		AuthPageEnabled: cfg.AuthPageEnabled,
	}, logger)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		rdb:    rdb,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening",
			"host", a.cfg.Server.Host,
			"port", a.cfg.Server.Port,
			"cache", a.cfg.Redis.Enabled(),
			"auth_page", a.cfg.AuthPageEnabled,
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := a.httpServer.Shutdown(ctx)
		if a.rdb != nil {
			_ = a.rdb.Close()
		}
		return err
	})

	return g.Wait()
}
