// Package update реализует административный HTTP-обработчик обновления рецепта.
//
// Обновление частичное: меняются только присланные поля документа,
// created_at не трогается. Неизвестный id отдаётся как 404.
package update

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

// Service описывает интерфейс бизнес-логики обновления рецепта.
type Service interface {
	Update(ctx context.Context, id string, data map[string]any) error
}

// Handler обрабатывает запросы обновления рецепта.
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
	const op = "handlers.recipe.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var data map[string]any
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if len(data) == 0 {
		log.Error("empty update document")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("update document is empty"))
		return
	}

	if err := h.service.Update(r.Context(), id, data); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("recipe not found", slog.String("recipe_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
			return
		}
		log.Error("failed to update recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update recipe"))
		return
	}

	log.Info("recipe updated", slog.String("recipe_id", id))
	render.JSON(w, r, response.OK(nil))
}
