// Package tastetrail собирает приложение целиком: подключение к базе,
// миграции, кеш, бизнес-сервисы, маршруты и HTTP-сервер.
package tastetrail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/tastetrail/internal/cache"
	"github.com/magabrotheeeer/tastetrail/internal/config"
	"github.com/magabrotheeeer/tastetrail/internal/lib/jwt"
	"github.com/magabrotheeeer/tastetrail/internal/migrations"
	authservice "github.com/magabrotheeeer/tastetrail/internal/services/auth"
	categoryservice "github.com/magabrotheeeer/tastetrail/internal/services/category"
	recipeservice "github.com/magabrotheeeer/tastetrail/internal/services/recipe"
	reviewservice "github.com/magabrotheeeer/tastetrail/internal/services/review"
	userservice "github.com/magabrotheeeer/tastetrail/internal/services/user"
	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

// App хранит собранный HTTP-сервер и ресурсы, требующие закрытия.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New инициализирует все зависимости приложения и возвращает готовый App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	userService := userservice.NewUserService(db)
	recipeService := recipeservice.NewRecipeService(db, cacheRedis, logger)
	categoryService := categoryservice.NewCategoryService(db)
	reviewService := reviewservice.NewReviewService(db)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker,
		authService, userService, recipeService, categoryService, reviewService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до остановки контекста
// или ошибки сервера. При остановке контекста сервер гасится мягко.
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
		a.db.DB.Close()
		return err
	}
}
