package ports

import (
	"context"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
)

type RegisterCustomerInput struct {
	CPF   string
	Name  string
	Phone string
	Email *string
}

type CustomerRepository interface {
	// FindByTaxID scans by the unique CPF key. Absence is not an error:
	// the customer pointer is nil when no record matches.
	FindByTaxID(ctx context.Context, cpf string) (*entity.Customer, error)
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	Register(ctx context.Context, input RegisterCustomerInput) (entity.Customer, error)
	History(ctx context.Context, customerID string) ([]entity.Order, error)
	// AppendHistory adds an order to the customer's permanent history.
	// Invoked only by order placement; callers pre-validate existence, and
	// an unknown id still fails with entity.ErrCustomerNotFound.
	AppendHistory(ctx context.Context, customerID string, order entity.Order) error
}
