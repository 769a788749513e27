package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderStatusPendiente  = "PENDIENTE"
	OrderStatusCompletado = "COMPLETADO"
	OrderStatusCancelado  = "CANCELADO"
)

// ValidOrderStatus verifica que el estado sea uno de los permitidos.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusPendiente || s == OrderStatusCompletado || s == OrderStatusCancelado
}

// OrderItem es una línea del pedido: snapshot de identidad y precio del producto
// al momento de crear el pedido, desacoplado del catálogo vivo.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Order representa un pedido. SellerID se deriva siempre del Principal
// autenticado en la creación, nunca del input del caller, y es inmutable.
type Order struct {
	ID        string
	Items     []OrderItem
	Total     decimal.Decimal
	ClientID  string
	SellerID  string
	Status    string // PENDIENTE, COMPLETADO, CANCELADO
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
