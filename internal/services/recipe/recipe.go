// Package services содержит бизнес-логику работы с рецептами, включая
// кеширование публичной выдачи.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/tastetrail/internal/cache"
	"github.com/magabrotheeeer/tastetrail/internal/lib/sl"
	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// listCacheTTL ограничивает время жизни кешированного списка рецептов.
const listCacheTTL = time.Minute

// RecipeRepository определяет методы хранилища рецептов.
type RecipeRepository interface {
	// CreateRecipe сохраняет документ и возвращает назначенный id.
	CreateRecipe(ctx context.Context, data map[string]any) (string, error)
	// ListRecipes возвращает все рецепты.
	ListRecipes(ctx context.Context) ([]*models.Recipe, error)
	// UpdateRecipe частично обновляет документ; storage.ErrNotFound, если id неизвестен.
	UpdateRecipe(ctx context.Context, id string, data map[string]any) error
	// DeleteRecipe удаляет документ; storage.ErrNotFound, если id неизвестен.
	DeleteRecipe(ctx context.Context, id string) error
}

// Cache описывает методы кеширования выдачи.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// RecipeService реализует бизнес-логику рецептов.
// Публичный список кешируется, любая мутация сбрасывает кеш.
type RecipeService struct {
	repo  RecipeRepository
	cache Cache
	log   *slog.Logger
}

// NewRecipeService создает новый экземпляр RecipeService.
func NewRecipeService(repo RecipeRepository, cache Cache, log *slog.Logger) *RecipeService {
	return &RecipeService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create сохраняет новый рецепт и возвращает его id.
func (s *RecipeService) Create(ctx context.Context, data map[string]any) (string, error) {
	const op = "services.recipe.Create"

	id, err := s.repo.CreateRecipe(ctx, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	return id, nil
}

// List возвращает все рецепты, отдавая кешированную выдачу, когда она есть.
// Недоступность кеша деградирует до похода в базу.
func (s *RecipeService) List(ctx context.Context) ([]*models.Recipe, error) {
	const op = "services.recipe.List"

	var cached []*models.Recipe
	found, err := s.cache.Get(ctx, cache.RecipesKey, &cached)
	if err != nil {
		s.log.Error("failed to read recipes cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.cache.Set(ctx, cache.RecipesKey, recipes, listCacheTTL); err != nil {
		s.log.Error("failed to cache recipes list", sl.Err(err))
	}
	return recipes, nil
}

// Update накладывает присланные поля на сохранённый документ.
func (s *RecipeService) Update(ctx context.Context, id string, data map[string]any) error {
	const op = "services.recipe.Update"

	if err := s.repo.UpdateRecipe(ctx, id, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	return nil
}

// Remove удаляет рецепт по id.
func (s *RecipeService) Remove(ctx context.Context, id string) error {
	const op = "services.recipe.Remove"

	if err := s.repo.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	return nil
}

func (s *RecipeService) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.RecipesKey); err != nil {
		s.log.Error("failed to invalidate recipes cache", sl.Err(err))
	}
}
