package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockSummaryResult totais da aba de visão geral do dashboard.
type StockSummaryResult struct {
	TotalProducts int
	LowStock      int
	StockValue    decimal.Decimal // Σ current_stock × sale_price
}

// TopProductResult unidades vendidas por produto no período.
type TopProductResult struct {
	ProductID   string
	ProductName string
	Quantity    int
}

// MovementStatsResult contagens de movimentações no período.
type MovementStatsResult struct {
	Total   int
	Entries int
	Exits   int
}

// SalesLineResult linha do relatório de vendas (exportação PDF).
type SalesLineResult struct {
	SaleDate    time.Time
	ProductName string
	ProductSKU  string
	Quantity    int
	SalePrice   decimal.Decimal
	Discount    decimal.Decimal
	Profit      decimal.Decimal
}

// ReportsRepository consultas read-only para dashboard e relatórios.
type ReportsRepository interface {
	GetStockSummary(ctx context.Context) (StockSummaryResult, error)
	GetProfit(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	GetMovementStats(ctx context.Context, from, to time.Time) (MovementStatsResult, error)
	GetSalesLines(ctx context.Context, from, to time.Time) ([]SalesLineResult, error)
}
