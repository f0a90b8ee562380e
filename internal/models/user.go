// Package models содержит доменные модели сервиса: пользователи,
// рецепты, категории и отзывы. Структуры используются бизнес-логикой
// и слоем хранилища.
package models

import "time"

// Роли пользователей. Роль admin открывает административные маршруты.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultPhotoURL подставляется клиенту, если пользователь не загрузил фото.
const DefaultPhotoURL = "https://i.ibb.co/2kR1Y0F/default-avatar.png"

// User представляет зарегистрированного пользователя сервиса.
// PasswordHash никогда не сериализуется в ответы клиенту.
type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"` // Уникальный неизменяемый идентификатор входа
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	Photo        string    `json:"photo,omitempty"`
	Role         string    `json:"role"` // user или admin
	CreatedAt    time.Time `json:"createdAt"`
}

// PhotoOrDefault возвращает фото пользователя либо плейсхолдер, если фото нет.
func (u *User) PhotoOrDefault() string {
	if u.Photo == "" {
		return DefaultPhotoURL
	}
	return u.Photo
}
