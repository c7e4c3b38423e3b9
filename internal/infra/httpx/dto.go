package httpx

import "github.com/jpmattos/kiosk-totem/internal/core/domain/entity"

type UpdateProductRequest struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

type CheckCustomerRequest struct {
	CPF string `json:"cpf"`
}

type CheckCustomerResponse struct {
	Exists   bool             `json:"exists"`
	Customer *entity.Customer `json:"usuario"`
}

type RegisterCustomerRequest struct {
	CPF   string  `json:"cpf"`
	Name  string  `json:"nome"`
	Phone string  `json:"celular"`
	Email *string `json:"email"`
}

type PlaceOrderRequest struct {
	Items      []entity.OrderItem `json:"items"`
	Total      float64            `json:"total"`
	CustomerID string             `json:"usuarioId"`
}

type PlaceOrderResponse struct {
	OrderID string `json:"pedidoId"`
}

type SuggestionRequest struct {
	CustomerID  string        `json:"usuarioId"`
	CartItems   []CartItemDTO `json:"cartItems"`
	Temperature *float64      `json:"temperatura"`
}

type CartItemDTO struct {
	Name string `json:"nome"`
}

type SuggestionResponse struct {
	Suggestion string `json:"sugestao"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
