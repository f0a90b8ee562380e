package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tastetrail/internal/http/response"
	"github.com/magabrotheeeer/tastetrail/internal/lib/sl"
	"github.com/magabrotheeeer/tastetrail/internal/models"
	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

// RoleProvider отдаёт актуальную роль пользователя из хранилища.
type RoleProvider interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// AdminOnlyMiddleware возвращает middleware, пропускающий только администраторов.
//
// Ставится строго после JWTMiddleware: без email в контексте запрос
// отклоняется. Роль перечитывается из хранилища, а не берётся из токена:
// токены живут 7 дней без отзыва, и понижение роли должно действовать сразу.
func AdminOnlyMiddleware(log *slog.Logger, roles RoleProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminOnlyMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			email, ok := r.Context().Value(Email).(string)
			if !ok || email == "" {
				log.Error("email missing in request context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			role, err := roles.RoleByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					log.Error("user not found for admin check", slog.String("email", email))
					w.WriteHeader(http.StatusForbidden)
					render.JSON(w, r, response.Error("admin access required"))
					return
				}
				log.Error("failed to get user role", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal server error"))
				return
			}

			if role != models.RoleAdmin {
				log.Error("admin access denied", slog.String("email", email), slog.String("role", role))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
