// Package services содержит бизнес-логику чтения данных пользователей.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// UserRepository описывает контракт хранилища для чтения пользователей.
type UserRepository interface {
	// GetUserByEmail возвращает пользователя либо storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserRole возвращает актуальную роль либо storage.ErrNotFound.
	GetUserRole(ctx context.Context, email string) (string, error)
	// ListUsers возвращает всех пользователей без хешей паролей.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// UserService отдаёт профили и роли пользователей.
// Хеш пароля вычищается из любого ответа, и одиночного, и спискового.
type UserService struct {
	users UserRepository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Me возвращает профиль пользователя без хеша пароля.
func (s *UserService) Me(ctx context.Context, email string) (*models.User, error) {
	const op = "services.user.Me"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.PasswordHash = ""
	return user, nil
}

// RoleByEmail возвращает актуальную роль пользователя из хранилища.
// На этот метод опираются ворота авторизации.
func (s *UserService) RoleByEmail(ctx context.Context, email string) (string, error) {
	const op = "services.user.RoleByEmail"

	role, err := s.users.GetUserRole(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return role, nil
}

// ListAll возвращает всех пользователей. Хеши паролей в выдачу не попадают.
func (s *UserService) ListAll(ctx context.Context) ([]*models.User, error) {
	const op = "services.user.ListAll"

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}
