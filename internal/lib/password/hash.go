// Package password отвечает за безопасное хранение паролей пользователей.
//
// GetHash строит bcrypt-хеш пароля (соль включена в сам хеш),
// CompareHash проверяет введённый пароль против сохранённого хеша.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash возвращает bcrypt-хеш пароля со стандартной стоимостью (10 раундов).
//
// Хеш сохраняется в базе вместо исходного пароля.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает сохранённый bcrypt-хеш с введённым паролем.
//
// Возвращает nil при совпадении, иначе ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
