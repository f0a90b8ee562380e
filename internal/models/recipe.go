package models

import "time"

// Recipe — документ рецепта. Поля рецепта (название, порции, ингредиенты)
// задаются клиентом и хранятся как есть в Data; сервер управляет только
// идентификатором и отметками времени.
type Recipe struct {
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Category — документ категории рецептов, устроен так же, как Recipe.
type Category struct {
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
