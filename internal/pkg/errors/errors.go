package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок аутентификации (нет токена, неверный пароль).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	// Доменные ошибки (дубликаты вопросов, чужие ответы) оборачивают её через %w.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется при нарушении уникальности (имя типа теста, текст вопроса, текст ответа).
	ErrConflict = errors.New("resource state conflict")
)
