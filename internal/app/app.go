package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres"
	creditrepo "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres/credit"
	imagerepo "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres/image"
	userrepo "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/imagecraft-backend/internal/adapter/redis"
	"github.com/heartmarshall/imagecraft-backend/internal/adapter/render"
	"github.com/heartmarshall/imagecraft-backend/internal/auth"
	"github.com/heartmarshall/imagecraft-backend/internal/config"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/metrics"
	"github.com/heartmarshall/imagecraft-backend/internal/service/credit"
	"github.com/heartmarshall/imagecraft-backend/internal/service/image"
	"github.com/heartmarshall/imagecraft-backend/internal/service/transform"
	"github.com/heartmarshall/imagecraft-backend/internal/service/user"
	"github.com/heartmarshall/imagecraft-backend/internal/transport/middleware"
	"github.com/heartmarshall/imagecraft-backend/internal/transport/rest"
)

// viewCache is what the image service reads and revalidates.
type viewCache interface {
	GetImage(ctx context.Context, path string) (*domain.Image, bool, error)
	SetImage(ctx context.Context, path string, img *domain.Image) error
	Revalidate(ctx context.Context, path string) error
}

// Run is the application entry point. It loads configuration, connects to
// the database and Redis, wires services and serves HTTP until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level))

	// ----------------------------------------------------------------
	// Infrastructure
	// ----------------------------------------------------------------

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	checks := map[string]rest.Pinger{"database": pool}

	var views viewCache = redis.NopCache{}
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		defer client.Close()

		views = redis.NewViewCache(client, cfg.Redis.ViewTTL)
		checks["redis"] = redisPinger(client)
	} else {
		logger.Warn("redis disabled, view cache is a no-op")
	}

	m := metrics.New()

	// ----------------------------------------------------------------
	// Repositories and services
	// ----------------------------------------------------------------

	tx := postgres.NewTxManager(pool)
	users := userrepo.New(pool)

	credits := credit.NewService(logger, creditrepo.New(pool), tx, m)
	images := image.NewService(logger, imagerepo.New(pool), users, views, tx)
	profiles := user.NewService(logger, users)

	sessions := transform.NewManager(logger, cfg.Transform, credits, images, render.NewURLBuilder(cfg.Render), m)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(nil)

	// ----------------------------------------------------------------
	// HTTP
	// ----------------------------------------------------------------

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(BuildVersion(), checks),
		Sessions: rest.NewSessionHandler(sessions, logger),
		Images:   rest.NewImageHandler(images, logger),
		Me:       rest.NewMeHandler(profiles, credits, logger),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = m.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	router := rest.NewRouter(handlers, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.ClientIP(cfg.Server.TrustProxy),
			middleware.Logger(logger, m),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(jwt),
		},
		Protected: []middleware.Middleware{
			middleware.RequireUser(cfg.Auth.SignInPath),
			limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		},
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return sessions.Run(gctx)
	})

	g.Go(func() error {
		return limiter.RunCleanup(gctx, cfg.RateLimit.CleanupInterval)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

func redisPinger(client *goredis.Client) rest.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
