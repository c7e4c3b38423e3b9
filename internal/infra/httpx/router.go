package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jpmattos/kiosk-totem/internal/infra/httpx/middlewares"
)

// NewRouter mounts the kiosk REST surface plus static serving of uploaded
// product images.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.Tracing)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/cardapio", handler.ListProducts)
	r.Post("/cardapio", handler.AddProduct)
	r.Put("/cardapio/{id}", handler.UpdateProduct)
	r.Delete("/cardapio/{id}", handler.DeleteProduct)

	r.Post("/usuarios/check", handler.CheckCustomer)
	r.Post("/usuarios/register", handler.RegisterCustomer)
	r.Get("/usuarios/{id}/historico", handler.CustomerHistory)

	r.Post("/pedidos", handler.PlaceOrder)
	r.Get("/pedidos", handler.ListActiveOrders)
	r.Delete("/pedidos/{id}", handler.FinalizeOrder)

	r.Post("/gerar-sugestao", handler.GenerateSuggestion)

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(handler.uploadsDir))))

	return r
}
