package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
)

// TopClientResult total facturado a un cliente sobre pedidos COMPLETADO.
type TopClientResult struct {
	Total  decimal.Decimal
	Client entity.Client
}

// TopSellerResult total vendido por un vendedor sobre pedidos COMPLETADO.
type TopSellerResult struct {
	Total  decimal.Decimal
	Seller entity.User
}

// AnalyticsRepository consultas de agregación de solo lectura sobre pedidos
// ya confirmados. No requieren bloqueo: leen estado comprometido.
type AnalyticsRepository interface {
	TopClients(ctx context.Context, limit int) ([]TopClientResult, error)
	TopSellers(ctx context.Context, limit int) ([]TopSellerResult, error)
}
