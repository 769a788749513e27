package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea solicitada del pedido. Name y Price son el
// snapshot que envía el cliente del API; el precio vigente del catálogo se
// usa cuando vienen vacíos.
type OrderItemRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total    *decimal.Decimal   `json:"total"`
	ClientID string             `json:"client_id" validate:"required"`
	Status   string             `json:"status" validate:"omitempty,oneof=PENDIENTE COMPLETADO CANCELADO"`
}

// UpdateOrderRequest entrada para revisar un pedido (merge parcial).
// Si Items viene presente, la reserva de stock corre de nuevo sobre el stock
// actual; las cantidades del pedido original no se reintegran.
type UpdateOrderRequest struct {
	Items    []OrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Total    *decimal.Decimal   `json:"total"`
	ClientID *string            `json:"client_id"`
	Status   *string            `json:"status" validate:"omitempty,oneof=PENDIENTE COMPLETADO CANCELADO"`
}

// OrderItemResponse una línea del pedido persistido.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	ClientID  string              `json:"client_id"`
	SellerID  string              `json:"seller_id"`
	Status    string              `json:"status"`
	Date      time.Time           `json:"date"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
