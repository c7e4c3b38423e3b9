package ports

import (
	"context"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
)

// AddProductInput carries the already-parsed fields of a catalog submission.
// Image is the relative path under the public uploads directory.
type AddProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
}

type CatalogRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Add(ctx context.Context, input AddProductInput) (entity.Product, error)
	// Update replaces name and description only; price, category and image
	// are preserved.
	Update(ctx context.Context, id, name, description string) (entity.Product, error)
	Remove(ctx context.Context, id string) error
}
