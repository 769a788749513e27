package order

import (
	"context"

	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la pieza que habilita el modo atómico de
// reserva: decrementos de stock y escritura del pedido con Commit/Rollback
// como unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
