// Package tastetrail предоставляет маршруты для основного приложения.
package tastetrail

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/tastetrail/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/tastetrail/internal/http/handlers/auth/register"
	categorycreate "github.com/magabrotheeeer/tastetrail/internal/http/handlers/category/create"
	categorylist "github.com/magabrotheeeer/tastetrail/internal/http/handlers/category/list"
	categoryupdate "github.com/magabrotheeeer/tastetrail/internal/http/handlers/category/update"
	"github.com/magabrotheeeer/tastetrail/internal/http/handlers/health"
	recipecreate "github.com/magabrotheeeer/tastetrail/internal/http/handlers/recipe/create"
	recipelist "github.com/magabrotheeeer/tastetrail/internal/http/handlers/recipe/list"
	reciperemove "github.com/magabrotheeeer/tastetrail/internal/http/handlers/recipe/remove"
	recipeupdate "github.com/magabrotheeeer/tastetrail/internal/http/handlers/recipe/update"
	reviewcreate "github.com/magabrotheeeer/tastetrail/internal/http/handlers/review/create"
	reviewlist "github.com/magabrotheeeer/tastetrail/internal/http/handlers/review/list"
	userlist "github.com/magabrotheeeer/tastetrail/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/tastetrail/internal/http/handlers/user/me"
	"github.com/magabrotheeeer/tastetrail/internal/http/handlers/user/role"
	"github.com/magabrotheeeer/tastetrail/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tastetrail/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/tastetrail/internal/services/auth"
	categoryservice "github.com/magabrotheeeer/tastetrail/internal/services/category"
	recipeservice "github.com/magabrotheeeer/tastetrail/internal/services/recipe"
	reviewservice "github.com/magabrotheeeer/tastetrail/internal/services/review"
	userservice "github.com/magabrotheeeer/tastetrail/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.AuthService,
	userService *userservice.UserService,
	recipeService *recipeservice.RecipeService,
	categoryService *categoryservice.CategoryService,
	reviewService *reviewservice.ReviewService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
	r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
	r.Get("/users/role", role.New(logger, userService).ServeHTTP)
	r.Get("/recipes", recipelist.New(logger, recipeService).ServeHTTP)
	r.Get("/categories", categorylist.New(logger, categoryService).ServeHTTP)
	r.Get("/recipes/{id}/reviews", reviewlist.New(logger, reviewService).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/users/me", me.New(logger, userService).ServeHTTP)
		r.Post("/recipes/{id}/reviews", reviewcreate.New(logger, reviewService).ServeHTTP)

		// Административные маршруты: роль сверяется с хранилищем,
		// а не с полем токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AdminOnlyMiddleware(logger, userService))
			r.Get("/users", userlist.New(logger, userService).ServeHTTP)
			r.Post("/admin/recipes", recipecreate.New(logger, recipeService).ServeHTTP)
			r.Put("/admin/recipes/{id}", recipeupdate.New(logger, recipeService).ServeHTTP)
			r.Delete("/admin/recipes/{id}", reciperemove.New(logger, recipeService).ServeHTTP)
			r.Post("/admin/categories", categorycreate.New(logger, categoryService).ServeHTTP)
			r.Put("/admin/categories/{id}", categoryupdate.New(logger, categoryService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
