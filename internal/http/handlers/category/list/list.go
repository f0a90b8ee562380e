// Package list реализует публичный HTTP-обработчик списка категорий.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tastetrail/internal/http/response"
	"github.com/magabrotheeeer/tastetrail/internal/lib/sl"
	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// Service описывает интерфейс спискового чтения категорий.
type Service interface {
	List(ctx context.Context) ([]*models.Category, error)
}

// Handler обрабатывает запросы списка категорий.
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
	const op = "handlers.category.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	categories, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	if categories == nil {
		categories = []*models.Category{}
	}
	render.JSON(w, r, categories)
}
