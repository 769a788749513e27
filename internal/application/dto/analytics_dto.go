package dto

import "github.com/shopspring/decimal"

// TopClientDTO cliente con el total facturado en pedidos COMPLETADO.
type TopClientDTO struct {
	Total  decimal.Decimal `json:"total"`
	Client ClientResponse  `json:"client"`
}

// TopSellerDTO vendedor con el total vendido en pedidos COMPLETADO.
type TopSellerDTO struct {
	Total  decimal.Decimal `json:"total"`
	Seller UserResponse    `json:"seller"`
}
