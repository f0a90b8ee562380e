package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// CreateCategory сохраняет документ категории и возвращает назначенный id.
func (s *Storage) CreateCategory(ctx context.Context, data map[string]any) (string, error) {
	const op = "storage.CreateCategory"
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
	query := `INSERT INTO categories (data)
			  VALUES ($1)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query, raw).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListCategories возвращает все категории в порядке создания.
func (s *Storage) ListCategories(ctx context.Context) ([]*models.Category, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, data, created_at, updated_at
			  FROM categories
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Category
	for rows.Next() {
		var c models.Category
		var raw []byte
		if err = rows.Scan(&c.ID, &raw, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(raw, &c.Data); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCategory накладывает присланные поля поверх сохранённых и обновляет
// только updated_at. ErrNotFound, если категории с таким id нет.
func (s *Storage) UpdateCategory(ctx context.Context, id string, data map[string]any) error {
	const op = "storage.UpdateCategory"
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

	query := `UPDATE categories
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
