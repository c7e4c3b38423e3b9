package entity

import "time"

type OrderStatus string

// The order lifecycle has two states: an order is "pendente" while it sits
// in the active queue and is removed from the queue (not transitioned) when
// staff finalize it. The history copy keeps the status it was created with.
const OrderStatusPending OrderStatus = "pendente"

// OrderItem is a denormalized snapshot of a product at purchase time, plus
// the quantity. There is no foreign key back to the catalog: deleting a
// product never rewrites past orders.
type OrderItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao,omitempty"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria,omitempty"`
	Image       string  `json:"imagem,omitempty"`
	Quantity    int     `json:"quantity"`
}

// Order is the permanent record of a checkout. One copy lives forever inside
// the customer's historico; a second copy sits in the active queue until
// finalized.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"usuarioId"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Date       time.Time   `json:"data"`
	Status     OrderStatus `json:"status"`
}

// QueuedOrder is the active-queue view of an Order, carrying the customer's
// display name so staff screens don't have to join against usuarios.json.
type QueuedOrder struct {
	Order
	CustomerName string `json:"nomeCliente"`
}
