// Package create реализует административный HTTP-обработчик создания категории.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tastetrail/internal/http/response"
	"github.com/magabrotheeeer/tastetrail/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики создания категории.
type Service interface {
	Create(ctx context.Context, data map[string]any) (string, error)
}

// Handler обрабатывает запросы создания категории.
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
	const op = "handlers.category.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var data map[string]any
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if len(data) == 0 {
		log.Error("empty category document")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("category document is empty"))
		return
	}

	id, err := h.service.Create(r.Context(), data)
	if err != nil {
		log.Error("failed to create category", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create category"))
		return
	}

	log.Info("category created", slog.String("category_id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"message": "Category created",
	}))
}
