package repository

import "github.com/jhoicas/crm-pedidos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (el libro de pedidos).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListAll() ([]*entity.Order, error)
	ListBySeller(sellerID string) ([]*entity.Order, error)
	ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) error
}
