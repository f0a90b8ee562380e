// Package list реализует публичный HTTP-обработчик списка отзывов о рецепте.
// Для рецепта без отзывов (и для неизвестного id) возвращается пустой массив.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tastetrail/internal/http/response"
	"github.com/magabrotheeeer/tastetrail/internal/lib/sl"
	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// Service описывает интерфейс спискового чтения отзывов.
type Service interface {
	ListByRecipe(ctx context.Context, recipeID string) ([]*models.Review, error)
}

// Handler обрабатывает запросы списка отзывов.
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
	const op = "handlers.review.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recipeID := chi.URLParam(r, "id")

	reviews, err := h.service.ListByRecipe(r.Context(), recipeID)
	if err != nil {
		log.Error("failed to list reviews", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}
	render.JSON(w, r, reviews)
}
