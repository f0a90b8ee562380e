package models

import "time"

// Review — отзыв пользователя о рецепте: оценка от 1 до 5 и комментарий.
type Review struct {
	ID          string    `json:"id"`
	RecipeID    string    `json:"recipeId"`
	AuthorEmail string    `json:"authorEmail"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
