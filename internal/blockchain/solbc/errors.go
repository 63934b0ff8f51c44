// internal/blockchain/solbc/errors.go
package solbc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidResponse возникает при получении некорректного ответа
	ErrInvalidResponse = errors.New("invalid RPC response")
)

// RPCError представляет ошибку RPC с дополнительным контекстом
type RPCError struct {
	Err      error
	Endpoint string
	Method   string
}

// Error реализует интерфейс error
func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error [%s] at %s: %v", e.Method, e.Endpoint, e.Err)
}

// Unwrap возвращает оригинальную ошибку
func (e *RPCError) Unwrap() error {
	return e.Err
}

// NewRPCError создает новую ошибку RPC
func NewRPCError(err error, endpoint, method string) error {
	return &RPCError{
		Err:      err,
		Endpoint: endpoint,
		Method:   method,
	}
}
