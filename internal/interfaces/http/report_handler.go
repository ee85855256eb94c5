package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/application/reports"
	"github.com/ddik-sports/ddik-api/internal/domain"
)

// ReportHandler gerencia dashboard, relatório de movimentações e exportação
// PDF (protegido, exige CapReportsRead exceto o dashboard).
type ReportHandler struct {
	dashboardUC *reports.DashboardUseCase
	pdfUC       *reports.PDFUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(dashboardUC *reports.DashboardUseCase, pdfUC *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{dashboardUC: dashboardUC, pdfUC: pdfUC}
}

// Dashboard godoc
// @Summary      Resumo do dashboard
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Relatório de movimentações por período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month"  default(month)
// @Success      200     {object}  dto.MovementReportDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	period := c.Query("period", "month")
	out, err := h.dashboardUC.GetMovementReport(c.Context(), period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period deve ser today, week ou month"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportSalesPDF godoc
// @Summary      Exportar relatório de vendas em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  true  "Início do período (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fim do período (YYYY-MM-DD)"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) ExportSalesPDF(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (esperado YYYY-MM-DD)"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (esperado YYYY-MM-DD)"})
	}
	// Inclui o dia final inteiro.
	to = to.Add(24*time.Hour - time.Nanosecond)

	pdfBytes, filename, err := h.pdfUC.ExportSalesPDF(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
