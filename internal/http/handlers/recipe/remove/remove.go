// Package remove реализует административный HTTP-обработчик удаления рецепта.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tastetrail/internal/http/response"
	"github.com/magabrotheeeer/tastetrail/internal/lib/sl"
	"github.com/magabrotheeeer/tastetrail/internal/storage"
)

// Service описывает интерфейс бизнес-логики удаления рецепта.
type Service interface {
	Remove(ctx context.Context, id string) error
}

// Handler обрабатывает запросы удаления рецепта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("recipe not found", slog.String("recipe_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to delete recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete recipe"))
		return
	}

	log.Info("recipe deleted", slog.String("recipe_id", id))
	render.JSON(w, r, response.OK(nil))
}
