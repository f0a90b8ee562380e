// Package services содержит бизнес-логику отзывов о рецептах.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// ReviewRepository определяет методы хранилища отзывов.
type ReviewRepository interface {
	// CreateReview сохраняет отзыв; storage.ErrNotFound, если рецепта нет.
	CreateReview(ctx context.Context, review models.Review) (string, error)
	// ListReviewsByRecipe возвращает отзывы о рецепте.
	ListReviewsByRecipe(ctx context.Context, recipeID string) ([]*models.Review, error)
}

// ReviewService реализует бизнес-логику отзывов.
type ReviewService struct {
	repo ReviewRepository
}

// NewReviewService создает новый экземпляр ReviewService.
func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// Create сохраняет отзыв от имени аутентифицированного пользователя.
func (s *ReviewService) Create(ctx context.Context, recipeID, authorEmail string, rating int, comment string) (string, error) {
	const op = "services.review.Create"

	review := models.Review{
		RecipeID:    recipeID,
		AuthorEmail: authorEmail,
		Rating:      rating,
		Comment:     comment,
	}
	id, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListByRecipe возвращает отзывы о рецепте, свежие первыми.
func (s *ReviewService) ListByRecipe(ctx context.Context, recipeID string) ([]*models.Review, error) {
	const op = "services.review.ListByRecipe"

	reviews, err := s.repo.ListReviewsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reviews, nil
}
