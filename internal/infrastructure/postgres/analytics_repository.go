package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-pedidos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación de solo lectura sobre el libro de pedidos.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// TopClients agrupa pedidos COMPLETADO por cliente, suma el total por grupo y
// devuelve los `limit` mayores. Desempate por id de cliente ascendente para
// salida determinista.
func (r *AnalyticsRepo) TopClients(ctx context.Context, limit int) ([]repository.TopClientResult, error) {
	const query = `
	SELECT
	    SUM(o.total)  AS total,
	    c.id, c.first_name, c.last_name, c.company, c.email, c.phone, c.seller_id,
	    c.created_at, c.updated_at
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	WHERE o.status = 'COMPLETADO'
	GROUP BY c.id, c.first_name, c.last_name, c.company, c.email, c.phone, c.seller_id,
	         c.created_at, c.updated_at
	ORDER BY total DESC, c.id ASC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopClients: %w", err)
	}
	defer rows.Close()

	var results []repository.TopClientResult
	for rows.Next() {
		var row repository.TopClientResult
		if err := rows.Scan(
			&row.Total,
			&row.Client.ID, &row.Client.FirstName, &row.Client.LastName, &row.Client.Company,
			&row.Client.Email, &row.Client.Phone, &row.Client.SellerID,
			&row.Client.CreatedAt, &row.Client.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("analytics.TopClients scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopSellers agrupa pedidos COMPLETADO por vendedor, suma el total por grupo y
// devuelve los `limit` mayores. Desempate por id de vendedor ascendente.
func (r *AnalyticsRepo) TopSellers(ctx context.Context, limit int) ([]repository.TopSellerResult, error) {
	const query = `
	SELECT
	    SUM(o.total)  AS total,
	    u.id, u.first_name, u.last_name, u.email, u.created_at, u.updated_at
	FROM orders o
	JOIN users u ON u.id = o.seller_id
	WHERE o.status = 'COMPLETADO'
	GROUP BY u.id, u.first_name, u.last_name, u.email, u.created_at, u.updated_at
	ORDER BY total DESC, u.id ASC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopSellers: %w", err)
	}
	defer rows.Close()

	var results []repository.TopSellerResult
	for rows.Next() {
		var row repository.TopSellerResult
		if err := rows.Scan(
			&row.Total,
			&row.Seller.ID, &row.Seller.FirstName, &row.Seller.LastName, &row.Seller.Email,
			&row.Seller.CreatedAt, &row.Seller.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("analytics.TopSellers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
