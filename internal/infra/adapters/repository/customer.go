package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
	"github.com/jpmattos/kiosk-totem/internal/core/ports"
	"github.com/jpmattos/kiosk-totem/internal/storage/jsonfile"
)

var _ ports.CustomerRepository = (*Customers)(nil)

// Customers is the flat-file implementation of ports.CustomerRepository,
// backed by usuarios.json. Each customer embeds their full order history.
type Customers struct {
	store *jsonfile.Store[entity.Customer]
}

func NewCustomers(store *jsonfile.Store[entity.Customer]) *Customers {
	return &Customers{store: store}
}

func (r *Customers) FindByTaxID(ctx context.Context, cpf string) (*entity.Customer, error) {
	customers, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].CPF == cpf {
			return &customers[i], nil
		}
	}
	return nil, nil
}

func (r *Customers) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	customers, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, nil
}

func (r *Customers) Register(ctx context.Context, input ports.RegisterCustomerInput) (entity.Customer, error) {
	if input.CPF == "" || input.Name == "" || input.Phone == "" {
		return entity.Customer{}, entity.Validationf("cpf, nome and celular are required")
	}

	customer := entity.Customer{
		ID:      uuid.NewString(),
		CPF:     input.CPF,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		History: []entity.Order{},
	}

	// The uniqueness check runs inside Update, under the store lock, so two
	// concurrent registrations with the same CPF cannot both pass it.
	err := r.store.Update(func(customers []entity.Customer) ([]entity.Customer, error) {
		for _, c := range customers {
			if c.CPF == input.CPF {
				return nil, entity.ErrDuplicateCPF
			}
		}
		return append(customers, customer), nil
	})
	if err != nil {
		return entity.Customer{}, err
	}
	return customer, nil
}

func (r *Customers) History(ctx context.Context, customerID string) ([]entity.Order, error) {
	customer, err := r.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, entity.ErrCustomerNotFound
	}
	if customer.History == nil {
		return []entity.Order{}, nil
	}
	return customer.History, nil
}

func (r *Customers) AppendHistory(ctx context.Context, customerID string, order entity.Order) error {
	return r.store.Update(func(customers []entity.Customer) ([]entity.Customer, error) {
		for i := range customers {
			if customers[i].ID == customerID {
				customers[i].History = append(customers[i].History, order)
				return customers, nil
			}
		}
		return nil, entity.ErrCustomerNotFound
	})
}
