package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-pedidos-api/internal/domain"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
)

// ReceiptPDFGenerator genera la representación gráfica de un pedido.
type ReceiptPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, ord *entity.Order, seller *entity.User, client *entity.Client) ([]byte, error)
}

// PDFUseCase genera el comprobante PDF de un pedido, con el mismo guard de
// propiedad que la lectura individual.
type PDFUseCase struct {
	orderRepo  repository.OrderRepository
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
	generator  ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		userRepo:   userRepo,
		generator:  generator,
	}
}

// DownloadOrderPDF carga pedido, vendedor y cliente, y genera el comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el pedido no existe.
//   - domain.ErrForbidden       si el pedido no pertenece al vendedor del token.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, principal *entity.Principal, orderID string) (pdfBytes []byte, filename string, err error) {
	if principal == nil {
		return nil, "", domain.ErrUnauthorized
	}
	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if ord == nil {
		return nil, "", domain.ErrNotFound
	}
	if ord.SellerID != principal.ID {
		return nil, "", domain.ErrForbidden
	}

	seller, err := uc.userRepo.GetByID(ord.SellerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener vendedor: %w", err)
	}
	if seller == nil {
		return nil, "", fmt.Errorf("pdf: vendedor %s: %w", ord.SellerID, domain.ErrNotFound)
	}
	client, err := uc.clientRepo.GetByID(ord.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, "", fmt.Errorf("pdf: cliente %s: %w", ord.ClientID, domain.ErrNotFound)
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, ord, seller, client)
	if err != nil {
		return nil, "", err
	}
	filename = fmt.Sprintf("pedido-%s.pdf", ord.ID)
	return pdfBytes, filename, nil
}
