package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// SalesReportGenerator porto de saída para renderizar o relatório de vendas
// em PDF. A implementação concreta vive em infrastructure/pdf.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, from, to time.Time, lines []repository.SalesLineResult) ([]byte, error)
}

// PDFUseCase gera a exportação em PDF do relatório de vendas de um período.
type PDFUseCase struct {
	reportsRepo repository.ReportsRepository
	generator   SalesReportGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(reportsRepo repository.ReportsRepository, generator SalesReportGenerator) *PDFUseCase {
	return &PDFUseCase{reportsRepo: reportsRepo, generator: generator}
}

// ExportSalesPDF busca as linhas de venda do período e gera o PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) se tudo sair bem.
//   - domain.ErrInvalidInput    se o período for inválido.
func (uc *PDFUseCase) ExportSalesPDF(ctx context.Context, from, to time.Time) (pdfBytes []byte, filename string, err error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, "", domain.ErrInvalidInput
	}

	lines, err := uc.reportsRepo.GetSalesLines(ctx, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: buscar vendas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateSalesReport(ctx, from, to, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: gerar relatório: %w", err)
	}

	filename = fmt.Sprintf("vendas_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return pdfBytes, filename, nil
}
