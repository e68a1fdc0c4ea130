package service

import "errors"

// Ошибки сервисов, не сводящиеся к общим apperrors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)
