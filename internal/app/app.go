package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/campusdk/campusportalen/internal/cache"
	"github.com/campusdk/campusportalen/internal/config"
	"github.com/campusdk/campusportalen/internal/lib/jwt"
	"github.com/campusdk/campusportalen/internal/migrations"
	authservice "github.com/campusdk/campusportalen/internal/services/auth"
	eventservice "github.com/campusdk/campusportalen/internal/services/event"
	mealservice "github.com/campusdk/campusportalen/internal/services/meal"
	newsservice "github.com/campusdk/campusportalen/internal/services/news"
	orderservice "github.com/campusdk/campusportalen/internal/services/order"
	statsservice "github.com/campusdk/campusportalen/internal/services/stats"
	"github.com/campusdk/campusportalen/internal/storage/repository"
)

// App holds the running pieces of the portal backend.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New builds the application: connects to the store and the cache, runs
// migrations, constructs the services and the router and prepares the
// HTTP server.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.Db, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.SecretKey, cfg.JWTToken.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	mealService := mealservice.NewMealService(db, cacheRedis, logger)
	orderService := orderservice.NewOrderService(db, logger)
	eventService := eventservice.NewEventService(db, logger)
	newsService := newsservice.NewNewsService(db, cacheRedis, logger)
	statsService := statsservice.NewStatsService(db)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker, db,
		authService, mealService, orderService, eventService, newsService, statsService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails. On cancellation the server is shut down gracefully
// with a 15 second deadline.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.Db.Close()
		return err
	}
}
