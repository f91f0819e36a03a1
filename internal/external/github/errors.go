// Package github содержит клиент GitHub REST API для работы с социальным графом.
package github

import (
	"fmt"
	"time"
)

// AuthError представляет ошибку аутентификации (невалидный или истекший токен).
// Фатальна для запуска: оркестратор прерывает работу немедленно.
type AuthError struct {
	StatusCode int
	Message    string
}

// Error возвращает текстовое представление ошибки
func (e *AuthError) Error() string {
	return fmt.Sprintf("github auth failed (status %d): %s", e.StatusCode, e.Message)
}

// RateLimitError представляет исчерпание лимита запросов API.
// Не ретраится: следующий запуск по расписанию повторит попытку.
type RateLimitError struct {
	ResetAt time.Time
	Message string
}

// Error возвращает текстовое представление ошибки
func (e *RateLimitError) Error() string {
	if !e.ResetAt.IsZero() {
		return fmt.Sprintf("github rate limit exceeded (resets at %s): %s", e.ResetAt.Format(time.RFC3339), e.Message)
	}
	return fmt.Sprintf("github rate limit exceeded: %s", e.Message)
}

// NotFoundError представляет отсутствие целевого пользователя
type NotFoundError struct {
	Username string
}

// Error возвращает текстовое представление ошибки
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("github user %q not found", e.Username)
}
