// Package repository implements the core ports over flat JSON files, one
// file per collection, mirroring the data layout the totem frontend reads.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
	"github.com/jpmattos/kiosk-totem/internal/core/ports"
	"github.com/jpmattos/kiosk-totem/internal/storage/jsonfile"
)

var _ ports.CatalogRepository = (*Catalog)(nil)

// Catalog is the flat-file implementation of ports.CatalogRepository,
// backed by cardapio.json.
type Catalog struct {
	store *jsonfile.Store[entity.Product]
}

func NewCatalog(store *jsonfile.Store[entity.Product]) *Catalog {
	return &Catalog{store: store}
}

func (c *Catalog) List(ctx context.Context) ([]entity.Product, error) {
	return c.store.Read()
}

func (c *Catalog) Add(ctx context.Context, input ports.AddProductInput) (entity.Product, error) {
	if input.Name == "" || input.Description == "" || input.Category == "" || input.Image == "" {
		return entity.Product{}, entity.Validationf("nome, descricao, categoria and imagem are required")
	}
	if input.Price < 0 {
		return entity.Product{}, entity.Validationf("preco must be zero or positive")
	}

	product := entity.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
	}

	err := c.store.Update(func(products []entity.Product) ([]entity.Product, error) {
		return append(products, product), nil
	})
	if err != nil {
		return entity.Product{}, err
	}
	return product, nil
}

func (c *Catalog) Update(ctx context.Context, id, name, description string) (entity.Product, error) {
	if name == "" || description == "" {
		return entity.Product{}, entity.Validationf("nome and descricao are required")
	}

	var updated entity.Product
	err := c.store.Update(func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			// Only name and description change; price, category and image
			// are preserved.
			products[i].Name = name
			products[i].Description = description
			updated = products[i]
			return products, nil
		}
		return nil, entity.ErrProductNotFound
	})
	if err != nil {
		return entity.Product{}, err
	}
	return updated, nil
}

func (c *Catalog) Remove(ctx context.Context, id string) error {
	return c.store.Update(func(products []entity.Product) ([]entity.Product, error) {
		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(products) {
			return nil, entity.ErrProductNotFound
		}
		return kept, nil
	})
}
