package storage

import "errors"

// Ошибки хранилища, на которые опирается бизнес-логика.
var (
	// ErrUserExists — регистрация с уже занятым email.
	// Гарантируется уникальным индексом в базе, а не проверкой перед вставкой.
	ErrUserExists = errors.New("user already exists")

	// ErrNotFound — запись по идентификатору или email не найдена.
	ErrNotFound = errors.New("not found")
)
