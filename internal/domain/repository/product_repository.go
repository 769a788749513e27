package repository

import "github.com/jhoicas/crm-pedidos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByIDForUpdate solo tiene sentido dentro de una transacción (modo atómico
// de reserva de stock); fuera de transacción se comporta como GetByID.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int) error
	List() ([]*entity.Product, error)
	Delete(id string) error
	SearchByName(text string, limit int) ([]*entity.Product, error)
	SearchFullText(text string) ([]*entity.Product, error)
}
