package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo consultas de leitura para o dashboard e relatórios.
type ReportsRepo struct {
	pool *pgxpool.Pool
}

// NewReportsRepository constrói o adaptador de relatórios.
func NewReportsRepository(pool *pgxpool.Pool) *ReportsRepo {
	return &ReportsRepo{pool: pool}
}

// GetStockSummary devolve os totais da visão geral: produtos ativos, produtos
// em estoque baixo e valor do estoque a preço de venda.
func (r *ReportsRepo) GetStockSummary(ctx context.Context) (repository.StockSummaryResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                                          AS total_products,
	    COUNT(*) FILTER (WHERE current_stock <= minimum_stock)            AS low_stock,
	    COALESCE(SUM(current_stock * sale_price), 0)                      AS stock_value
	FROM products
	WHERE is_active`

	var result repository.StockSummaryResult
	err := r.pool.QueryRow(ctx, query).Scan(&result.TotalProducts, &result.LowStock, &result.StockValue)
	if err != nil {
		return repository.StockSummaryResult{}, fmt.Errorf("reports.GetStockSummary: %w", err)
	}
	return result, nil
}

// GetProfit soma o lucro das vendas do período.
// Usa COALESCE para devolver zero se não houver vendas.
func (r *ReportsRepo) GetProfit(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(profit), 0) FROM sales WHERE sale_date BETWEEN $1 AND $2`

	var profit decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&profit); err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetProfit: %w", err)
	}
	return profit, nil
}

// GetTopProducts devolve os produtos mais vendidos do período por unidades.
func (r *ReportsRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT s.product_id, p.name, SUM(s.quantity)::INT AS units
	FROM sales s
	JOIN products p ON p.id = s.product_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY s.product_id, p.name
	ORDER BY units DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMovementStats conta as movimentações do período por direção.
func (r *ReportsRepo) GetMovementStats(ctx context.Context, from, to time.Time) (repository.MovementStatsResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                            AS total,
	    COUNT(*) FILTER (WHERE movement_type = 'entry')     AS entries,
	    COUNT(*) FILTER (WHERE movement_type = 'exit')      AS exits
	FROM stock_movements
	WHERE created_at BETWEEN $1 AND $2`

	var result repository.MovementStatsResult
	err := r.pool.QueryRow(ctx, query, from, to).Scan(&result.Total, &result.Entries, &result.Exits)
	if err != nil {
		return repository.MovementStatsResult{}, fmt.Errorf("reports.GetMovementStats: %w", err)
	}
	return result, nil
}

// GetSalesLines devolve as linhas de venda do período para a exportação PDF.
func (r *ReportsRepo) GetSalesLines(ctx context.Context, from, to time.Time) ([]repository.SalesLineResult, error) {
	const query = `
	SELECT s.sale_date, p.name, p.sku, s.quantity, s.sale_price, s.discount, s.profit
	FROM sales s
	JOIN products p ON p.id = s.product_id
	WHERE s.sale_date BETWEEN $1 AND $2
	ORDER BY s.sale_date`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetSalesLines: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesLineResult
	for rows.Next() {
		var row repository.SalesLineResult
		if err := rows.Scan(
			&row.SaleDate,
			&row.ProductName,
			&row.ProductSKU,
			&row.Quantity,
			&row.SalePrice,
			&row.Discount,
			&row.Profit,
		); err != nil {
			return nil, fmt.Errorf("reports.GetSalesLines scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
