// Package services содержит бизнес-логику регистрации и входа пользователей.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/tastetrail/internal/lib/jwt"
	"github.com/magabrotheeeer/tastetrail/internal/lib/password"
	"github.com/magabrotheeeer/tastetrail/internal/models"
)

// ErrInvalidCredentials — пароль не совпал с сохранённым хешем.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его uid.
	// Занятый email даёт storage.ErrUserExists.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя либо storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и выпуск JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает пользователя с хешированным паролем и ролью user,
// затем сразу выпускает токен, чтобы клиент был залогинен после регистрации.
func (s *AuthService) Register(ctx context.Context, fullName, email, rawPassword, photo string) (token, role string, err error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashed,
		Photo:        photo,
		Role:         models.RoleUser, // дефолтная роль при регистрации
	}
	if _, err = s.users.RegisterUser(ctx, user); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	token, err = s.jwtMaker.GenerateToken(user.Email, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return token, user.Role, nil
}

// Login проверяет пароль и выпускает токен с ролью из хранилища.
// Фото возвращается с плейсхолдером, если пользователь его не загружал.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, role, photo string, err error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", "", fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err = s.jwtMaker.GenerateToken(user.Email, user.Role)
	if err != nil {
		return "", "", "", fmt.Errorf("%s: %w", op, err)
	}
	return token, user.Role, user.PhotoOrDefault(), nil
}
