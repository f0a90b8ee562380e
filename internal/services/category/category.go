// Package services содержит бизнес-логику работы с категориями рецептов.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// CategoryRepository определяет методы хранилища категорий.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, data map[string]any) (string, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	// UpdateCategory частично обновляет документ; storage.ErrNotFound, если id неизвестен.
	UpdateCategory(ctx context.Context, id string, data map[string]any) error
}

// CategoryService реализует бизнес-логику категорий.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService создает новый экземпляр CategoryService.
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create сохраняет новую категорию и возвращает её id.
func (s *CategoryService) Create(ctx context.Context, data map[string]any) (string, error) {
	const op = "services.category.Create"

	id, err := s.repo.CreateCategory(ctx, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает все категории.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	const op = "services.category.List"

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

// Update накладывает присланные поля на сохранённый документ категории.
func (s *CategoryService) Update(ctx context.Context, id string, data map[string]any) error {
	const op = "services.category.Update"

	if err := s.repo.UpdateCategory(ctx, id, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
