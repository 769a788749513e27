package order_test

import (
	"context"
	"sync"

	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests del flujo de pedidos
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error           { return nil }

func (r *fakeProductRepo) SearchByName(text string, limit int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) SearchFullText(text string) ([]*entity.Product, error) {
	return nil, nil
}

// stock lee el stock actual persistido del producto.
func (r *fakeProductRepo) stock(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		return p.Stock
	}
	return -1
}

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]entity.Product, len(r.products))
	for id, p := range r.products {
		snap[id] = *p
	}
	return snap
}

func (r *fakeProductRepo) restore(snap map[string]entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make(map[string]*entity.Product, len(snap))
	for id, p := range snap {
		cp := p
		r.products[id] = &cp
	}
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		cp := *o
		r.orders[o.ID] = &cp
	}
	return r
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListAll() ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeOrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	all, _ := r.ListAll()
	list := make([]*entity.Order, 0, len(all))
	for _, o := range all {
		if o.SellerID == sellerID {
			list = append(list, o)
		}
	}
	return list, nil
}

func (r *fakeOrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	mine, _ := r.ListBySeller(sellerID)
	list := make([]*entity.Order, 0, len(mine))
	for _, o := range mine {
		if o.Status == status {
			list = append(list, o)
		}
	}
	return list, nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		cp := *c
		r.clients[c.ID] = &cp
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) ListAll() ([]*entity.Client, error)                    { return nil, nil }
func (r *fakeClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error                          { return nil }
func (r *fakeClientRepo) Delete(id string) error                                 { return nil }

// fakeTxRunner emula la semántica transaccional del runner real: serializa
// las ejecuciones con un mutex y, si fn falla, restaura el estado previo de
// productos y pedidos (rollback).
type fakeTxRunner struct {
	mu          sync.Mutex
	productRepo *fakeProductRepo
	orderRepo   *fakeOrderRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	productSnap := r.productRepo.snapshot()
	r.orderRepo.mu.Lock()
	orderSnap := make(map[string]*entity.Order, len(r.orderRepo.orders))
	for id, o := range r.orderRepo.orders {
		cp := *o
		orderSnap[id] = &cp
	}
	r.orderRepo.mu.Unlock()

	if err := fn(r.productRepo, r.orderRepo); err != nil {
		r.productRepo.restore(productSnap)
		r.orderRepo.mu.Lock()
		r.orderRepo.orders = orderSnap
		r.orderRepo.mu.Unlock()
		return err
	}
	return nil
}
