package usecase

import (
	"context"

	"github.com/jhoicas/crm-pedidos-api/internal/application/dto"
	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
)

// Límites de los rankings, heredados del reporte original.
const (
	topClientsLimit = 10
	topSellersLimit = 5
)

// AnalyticsUseCase reportes globales sobre pedidos COMPLETADO. Lecturas sin
// scope de vendedor: agregan estado ya comprometido del libro de pedidos.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// TopClients los 10 clientes con mayor total facturado, descendente.
func (uc *AnalyticsUseCase) TopClients(ctx context.Context) ([]dto.TopClientDTO, error) {
	results, err := uc.repo.TopClients(ctx, topClientsLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopClientDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.TopClientDTO{
			Total:  r.Total,
			Client: *toClientResponse(&r.Client),
		})
	}
	return out, nil
}

// TopSellers los 5 vendedores con mayor total vendido, descendente.
func (uc *AnalyticsUseCase) TopSellers(ctx context.Context) ([]dto.TopSellerDTO, error) {
	results, err := uc.repo.TopSellers(ctx, topSellersLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSellerDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.TopSellerDTO{
			Total: r.Total,
			Seller: dto.UserResponse{
				ID:        r.Seller.ID,
				FirstName: r.Seller.FirstName,
				LastName:  r.Seller.LastName,
				Email:     r.Seller.Email,
				CreatedAt: r.Seller.CreatedAt,
				UpdatedAt: r.Seller.UpdatedAt,
			},
		})
	}
	return out, nil
}
