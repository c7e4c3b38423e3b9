// Package httpx exposes the kiosk REST surface: catalog CRUD, customer
// lookup/registration, the active-order queue and the upsell suggestion
// route. Handlers validate input at the boundary and delegate to the core
// ports; all error bodies share the {error, message} shape.
package httpx

import (
	"github.com/jpmattos/kiosk-totem/internal/core/ports"
)

type Handler struct {
	catalog    ports.CatalogRepository
	customers  ports.CustomerRepository
	orders     ports.OrderQueue
	suggester  ports.Suggester
	uploadsDir string
}

// NewHandler wires the handler with the core ports. uploadsDir is where
// product images land and from where /uploads/* serves them.
func NewHandler(
	catalog ports.CatalogRepository,
	customers ports.CustomerRepository,
	orders ports.OrderQueue,
	suggester ports.Suggester,
	uploadsDir string,
) *Handler {
	return &Handler{
		catalog:    catalog,
		customers:  customers,
		orders:     orders,
		suggester:  suggester,
		uploadsDir: uploadsDir,
	}
}
