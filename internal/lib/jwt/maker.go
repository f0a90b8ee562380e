// Package jwt реализует выпуск и проверку JWT токенов сервиса.
//
// Токен несёт email и роль пользователя на момент выпуска, подписывается
// HMAC-SHA256 общесерверным секретом и живёт фиксированные 7 дней.
// Проверка не различает причины отказа (подделка, чужой секрет, истёкший срок):
// для вызывающего кода токен либо валиден, либо нет.
package jwt

import (
	"time"
)

// Maker описывает интерфейс выпуска и разбора JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен с email и ролью пользователя.
	GenerateToken(email, role string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker на секретном ключе и фиксированном TTL.
// Состояния, кроме секрета, нет: любой процесс с тем же секретом
// проверит любой выпущенный токен.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт MakerImpl с заданным секретом и временем жизни токена.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
