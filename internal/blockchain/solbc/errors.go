// internal/blockchain/solbc/errors.go
package solbc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRateLimit возникает при превышении лимита запросов
var ErrRateLimit = errors.New("rate limit exceeded")

// Error представляет ошибку RPC с дополнительным контекстом
type Error struct {
	Err      error
	Endpoint string
	Method   string
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	return fmt.Sprintf("RPC error [%s] at %s: %v", e.Method, e.Endpoint, e.Err)
}

// Unwrap возвращает оригинальную ошибку
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError создает новую ошибку RPC
func NewError(err error, endpoint, method string) error {
	return &Error{
		Err:      err,
		Endpoint: endpoint,
		Method:   method,
	}
}

// isRateLimited распознаёт ответы 429 от публичных узлов.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimit) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests") || strings.Contains(msg, "rate limit")
}
