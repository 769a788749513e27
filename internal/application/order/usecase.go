package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-pedidos-api/internal/application/dto"
	"github.com/jhoicas/crm-pedidos-api/internal/domain"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
	"github.com/jhoicas/crm-pedidos-api/pkg/config"
)

// OrderUseCase flujo de pedidos: creación, revisión y cancelación con efectos
// de inventario, más las lecturas con guard de propiedad.
//
// El modo de reserva (config.ReservationImmediate o config.ReservationAtomic)
// decide si los decrementos de stock y la escritura del pedido corren sueltos
// contra el pool o dentro de una transacción con bloqueo de fila.
type OrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	mode        string
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	reservationMode string,
) *OrderUseCase {
	if reservationMode == "" {
		reservationMode = config.ReservationImmediate
	}
	return &OrderUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		mode:        reservationMode,
	}
}

// ownedOrder carga el pedido y verifica que pertenece al principal.
// Existencia antes que propiedad: ErrNotFound y ErrForbidden se mantienen distinguibles.
func (uc *OrderUseCase) ownedOrder(id string, principal *entity.Principal) (*entity.Order, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if ord.SellerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	return ord, nil
}

// ownedClient verifica que el cliente referenciado existe y pertenece al principal.
func (uc *OrderUseCase) ownedClient(id string, principal *entity.Principal) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.SellerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

// Create crea un pedido: verifica cliente y propiedad, reserva stock sobre las
// líneas solicitadas y persiste el pedido con SellerID estampado del principal.
func (uc *OrderUseCase) Create(ctx context.Context, principal *entity.Principal, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPendiente
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.ownedClient(in.ClientID, principal); err != nil {
		return nil, err
	}

	now := time.Now()
	ord := &entity.Order{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		SellerID:  principal.ID, // siempre del principal, nunca del body
		Status:    status,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	fill := func(items []entity.OrderItem) {
		ord.Items = items
		if in.Total != nil {
			ord.Total = *in.Total
		} else {
			ord.Total = itemsTotal(items)
		}
	}

	if uc.mode == config.ReservationAtomic {
		err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
			items, err := reserveItems(productRepo, in.Items, true)
			if err != nil {
				return err
			}
			fill(items)
			return orderRepo.Create(ord)
		})
		if err != nil {
			return nil, err
		}
		return toOrderResponse(ord), nil
	}

	// Modo immediate: decrementos persistidos artículo por artículo contra el
	// pool; un fallo posterior no revierte los anteriores.
	items, err := reserveItems(uc.productRepo, in.Items, false)
	if err != nil {
		return nil, err
	}
	fill(items)
	if err := uc.orderRepo.Create(ord); err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// Revise actualiza un pedido (merge del patch sobre lo persistido).
//
// Autorización: el pedido debe pertenecer al principal y el cliente
// referenciado (el nuevo si el patch lo cambia) también. Si el patch trae
// líneas nuevas, la reserva corre otra vez contra el stock ya ajustado: las
// cantidades del pedido reemplazado no se reintegran.
func (uc *OrderUseCase) Revise(ctx context.Context, principal *entity.Principal, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	ord, err := uc.ownedOrder(id, principal)
	if err != nil {
		return nil, err
	}

	clientID := ord.ClientID
	if in.ClientID != nil {
		clientID = *in.ClientID
	}
	if _, err := uc.ownedClient(clientID, principal); err != nil {
		return nil, err
	}
	ord.ClientID = clientID

	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		ord.Status = *in.Status
	}

	apply := func(items []entity.OrderItem) {
		if items != nil {
			ord.Items = items
			if in.Total == nil {
				ord.Total = itemsTotal(items)
			}
		}
		if in.Total != nil {
			ord.Total = *in.Total
		}
		ord.UpdatedAt = time.Now()
	}

	if len(in.Items) > 0 && uc.mode == config.ReservationAtomic {
		err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
			items, err := reserveItems(productRepo, in.Items, true)
			if err != nil {
				return err
			}
			apply(items)
			return orderRepo.Update(ord)
		})
		if err != nil {
			return nil, err
		}
		return toOrderResponse(ord), nil
	}

	var items []entity.OrderItem
	if len(in.Items) > 0 {
		items, err = reserveItems(uc.productRepo, in.Items, false)
		if err != nil {
			return nil, err
		}
	}
	apply(items)
	if err := uc.orderRepo.Update(ord); err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// Cancel elimina el pedido del vendedor. El stock ya descontado no se
// reintegra (misma política de no-reembolso que la revisión).
func (uc *OrderUseCase) Cancel(ctx context.Context, principal *entity.Principal, id string) error {
	if _, err := uc.ownedOrder(id, principal); err != nil {
		return err
	}
	return uc.orderRepo.Delete(id)
}

// GetByID obtiene un pedido aplicando el guard de propiedad.
func (uc *OrderUseCase) GetByID(principal *entity.Principal, id string) (*dto.OrderResponse, error) {
	ord, err := uc.ownedOrder(id, principal)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// ListAll lista todos los pedidos sin filtrar por vendedor (lectura administrativa).
func (uc *OrderUseCase) ListAll() ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListMine lista los pedidos del vendedor autenticado.
func (uc *OrderUseCase) ListMine(principal *entity.Principal) ([]dto.OrderResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.orderRepo.ListBySeller(principal.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByStatus lista los pedidos del vendedor filtrados por estado.
func (uc *OrderUseCase) ListByStatus(principal *entity.Principal, status string) ([]dto.OrderResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.ListBySellerAndStatus(principal.ID, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Name:      it.Name,
			Price:     it.Price,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		ClientID:  o.ClientID,
		SellerID:  o.SellerID,
		Status:    o.Status,
		Date:      o.Date,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
