// Package create реализует административный HTTP-обработчик создания рецепта.
//
// Тело запроса принимается как свободный документ: сервер не навязывает
// схему полей рецепта, отметки времени проставляет хранилище.
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

// Service описывает интерфейс бизнес-логики создания рецепта.
type Service interface {
	Create(ctx context.Context, data map[string]any) (string, error)
}

// Handler обрабатывает запросы создания рецепта.
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
	const op = "handlers.recipe.create"

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
		log.Error("empty recipe document")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("recipe document is empty"))
		return
	}

	id, err := h.service.Create(r.Context(), data)
	if err != nil {
		log.Error("failed to create recipe", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create recipe"))
		return
	}

	log.Info("recipe created", slog.String("recipe_id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"recipeId": id,
	}))
}
