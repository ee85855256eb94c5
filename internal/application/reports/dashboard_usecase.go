// Package reports contém os casos de uso de dashboard e relatórios
// gerenciais (visão geral de estoque, movimentações e exportação PDF).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // número de produtos no widget do dashboard
	dashboardProfitDays  = 30 // janela de lucro recente
)

// DashboardUseCase gera o resumo do dashboard e o relatório de movimentações.
//
// Fonte de dados: ReportsRepository (consultas read-only).
// Não acessa as tabelas diretamente; delega tudo no repositório.
type DashboardUseCase struct {
	reportsRepo repository.ReportsRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(reportsRepo repository.ReportsRepository) *DashboardUseCase {
	return &DashboardUseCase{reportsRepo: reportsRepo}
}

// GetSummary constrói o DashboardSummaryDTO.
//
// Três chamadas em paralelo:
//  1. GetStockSummary            → TotalProducts + LowStock + StockValue
//  2. GetProfit(30 dias)         → RecentProfit
//  3. GetTopProducts(30d, top 5) → TopProducts
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -dashboardProfitDays)

	type summaryResult struct {
		summary repository.StockSummaryResult
		err     error
	}
	type profitResult struct {
		profit decimal.Decimal
		err    error
	}
	type topResult struct {
		top []repository.TopProductResult
		err error
	}

	summaryCh := make(chan summaryResult, 1)
	profitCh := make(chan profitResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		s, err := uc.reportsRepo.GetStockSummary(ctx)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		p, err := uc.reportsRepo.GetProfit(ctx, from, now)
		profitCh <- profitResult{p, err}
	}()
	go func() {
		t, err := uc.reportsRepo.GetTopProducts(ctx, from, now, dashboardTopProducts)
		topCh <- topResult{t, err}
	}()

	summary := <-summaryCh
	profit := <-profitCh
	top := <-topCh

	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: resumo de estoque: %w", summary.err)
	}
	if profit.err != nil {
		return nil, fmt.Errorf("dashboard: lucro recente: %w", profit.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top produtos: %w", top.err)
	}

	topDTOs := make([]dto.TopProductDTO, 0, len(top.top))
	for _, t := range top.top {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			Quantity:    t.Quantity,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts: summary.summary.TotalProducts,
		LowStock:      summary.summary.LowStock,
		StockValue:    summary.summary.StockValue.Round(2),
		RecentProfit:  profit.profit.Round(2),
		TopProducts:   topDTOs,
	}, nil
}

// GetMovementReport devolve as contagens de movimentações do período pedido
// (today, week ou month) e a taxa de entradas sobre o total.
func (uc *DashboardUseCase) GetMovementReport(ctx context.Context, period string) (*dto.MovementReportDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var from time.Time
	switch period {
	case "today":
		from = todayStart
	case "week":
		from = todayStart.AddDate(0, 0, -6)
	case "month":
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, domain.ErrInvalidInput
	}

	stats, err := uc.reportsRepo.GetMovementStats(ctx, from, now)
	if err != nil {
		return nil, fmt.Errorf("relatório de movimentações: %w", err)
	}

	entryRate := 0.0
	if stats.Total > 0 {
		entryRate = float64(stats.Entries) / float64(stats.Total) * 100
	}

	return &dto.MovementReportDTO{
		Period:    period,
		Total:     stats.Total,
		Entries:   stats.Entries,
		Exits:     stats.Exits,
		EntryRate: entryRate,
	}, nil
}
