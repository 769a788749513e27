package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pedidos-api/internal/application/dto"
	"github.com/jhoicas/crm-pedidos-api/internal/domain"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
)

// reserveItems valida y descuenta stock artículo por artículo, en el orden
// dado por el caller, y devuelve las líneas snapshot del pedido.
//
// Cada iteración lee el producto, verifica disponibilidad y persiste el
// decremento de inmediato. Si un artículo posterior falla, los decrementos ya
// persistidos de esta misma llamada NO se revierten aquí: en modo immediate
// quedan aplicados (comportamiento heredado y documentado); en modo atomic el
// rollback de la transacción del caller los deshace.
//
// forUpdate indica si la lectura debe bloquear la fila (solo tiene efecto
// dentro de una transacción).
func reserveItems(productRepo repository.ProductRepository, items []dto.OrderItemRequest, forUpdate bool) ([]entity.OrderItem, error) {
	reserved := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}

		var product *entity.Product
		var err error
		if forUpdate {
			product, err = productRepo.GetByIDForUpdate(it.ProductID)
		} else {
			product, err = productRepo.GetByID(it.ProductID)
		}
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %s: %w", it.ProductID, domain.ErrNotFound)
		}

		if it.Quantity > product.Stock {
			return nil, &domain.InsufficientStockError{
				ProductName: product.Name,
				Requested:   it.Quantity,
				Available:   product.Stock,
			}
		}

		if err := productRepo.UpdateStock(product.ID, product.Stock-it.Quantity); err != nil {
			return nil, err
		}

		// Snapshot de identidad y precio al momento del pedido; el caller puede
		// fijar nombre/precio propios (lista de precios negociada), si no se
		// toman los vigentes del catálogo.
		item := entity.OrderItem{
			ProductID: product.ID,
			Quantity:  it.Quantity,
			Name:      product.Name,
			Price:     product.Price,
		}
		if it.Name != "" {
			item.Name = it.Name
		}
		if it.Price != nil {
			item.Price = *it.Price
		}
		reserved = append(reserved, item)
	}
	return reserved, nil
}

// itemsTotal suma cantidad × precio de cada línea.
func itemsTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
