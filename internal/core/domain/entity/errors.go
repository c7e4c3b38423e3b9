package entity

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("active order not found")

	// ErrDuplicateCPF is returned when a registration reuses a CPF that is
	// already present in the store.
	ErrDuplicateCPF = errors.New("cpf already registered")

	// ErrSuggestionUnavailable wraps any failure of the external
	// text-generation collaborator. Ordering never depends on it.
	ErrSuggestionUnavailable = errors.New("suggestion collaborator unavailable")
)

// ValidationError reports missing or invalid input rejected at the boundary,
// before any write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a *ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
