package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// CreateRecipe сохраняет документ рецепта и возвращает назначенный базой id.
// created_at и updated_at проставляются базой одним и тем же моментом.
func (s *Storage) CreateRecipe(ctx context.Context, data map[string]any) (string, error) {
	const op = "storage.CreateRecipe"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var newID string
	query := `INSERT INTO recipes (data)
			  VALUES ($1)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query, raw).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListRecipes возвращает все рецепты в порядке создания.
func (s *Storage) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	const op = "storage.ListRecipes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, data, created_at, updated_at
			  FROM recipes
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Recipe
	for rows.Next() {
		var r models.Recipe
		var raw []byte
		if err = rows.Scan(&r.ID, &raw, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(raw, &r.Data); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetRecipe возвращает рецепт по id либо ErrNotFound.
func (s *Storage) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	const op = "storage.GetRecipe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	if !isValidUUID(id) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	query := `SELECT id, data, created_at, updated_at FROM recipes WHERE id = $1`
	var r models.Recipe
	var raw []byte
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&r.ID, &raw, &r.CreatedAt, &r.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(raw, &r.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &r, nil
}

// UpdateRecipe накладывает присланные поля поверх сохранённых (частичное
// обновление через конкатенацию JSONB) и обновляет только updated_at.
// ErrNotFound, если рецепта с таким id нет.
func (s *Storage) UpdateRecipe(ctx context.Context, id string, data map[string]any) error {
	const op = "storage.UpdateRecipe"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	if !isValidUUID(id) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE recipes
			  SET data = data || $1,
			      updated_at = now()
			  WHERE id = $2`
	res, err := s.DB.ExecContext(ctx, query, raw, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// DeleteRecipe удаляет рецепт по id. ErrNotFound, если рецепта нет.
func (s *Storage) DeleteRecipe(ctx context.Context, id string) error {
	const op = "storage.DeleteRecipe"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	if !isValidUUID(id) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	query := `DELETE FROM recipes WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
