package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// CreateReview сохраняет отзыв о рецепте и возвращает назначенный id.
// Ссылка на несуществующий рецепт отсекается внешним ключом и
// возвращает ErrNotFound.
func (s *Storage) CreateReview(ctx context.Context, review models.Review) (string, error) {
	const op = "storage.CreateReview"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	if !isValidUUID(review.RecipeID) {
		return "", fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var newID string
	query := `INSERT INTO reviews (recipe_id, author_email, rating, comment)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		review.RecipeID, review.AuthorEmail, review.Rating, review.Comment).Scan(&newID); err != nil {
		if isForeignKeyViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListReviewsByRecipe возвращает отзывы о рецепте, свежие первыми.
func (s *Storage) ListReviewsByRecipe(ctx context.Context, recipeID string) ([]*models.Review, error) {
	const op = "storage.ListReviewsByRecipe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	if !isValidUUID(recipeID) {
		return nil, nil
	}

	query := `SELECT id, recipe_id, author_email, rating, comment, created_at
			  FROM reviews
			  WHERE recipe_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Review
	for rows.Next() {
		var rv models.Review
		if err = rows.Scan(&rv.ID, &rv.RecipeID, &rv.AuthorEmail, &rv.Rating,
			&rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
