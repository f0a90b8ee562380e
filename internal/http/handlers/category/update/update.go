// Package update реализует административный HTTP-обработчик обновления категории.
// Семантика та же, что у обновления рецепта: частичное слияние полей.
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

// Service описывает интерфейс бизнес-логики обновления категории.
type Service interface {
	Update(ctx context.Context, id string, data map[string]any) error
}

// Handler обрабатывает запросы обновления категории.
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
	const op = "handlers.category.update"

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
			log.Error("category not found", slog.String("category_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
			return
		}
		log.Error("failed to update category", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update category"))
		return
	}

	log.Info("category updated", slog.String("category_id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"message": "Category updated",
	}))
}
