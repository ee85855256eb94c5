package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopProductDTO unidades vendidas por produto no período.
type TopProductDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// DashboardSummaryDTO resumo do dashboard: totais de estoque e lucro de 30 dias.
type DashboardSummaryDTO struct {
	TotalProducts int             `json:"total_products"`
	LowStock      int             `json:"low_stock"`
	StockValue    decimal.Decimal `json:"stock_value"`
	RecentProfit  decimal.Decimal `json:"recent_profit"` // últimos 30 dias
	TopProducts   []TopProductDTO `json:"top_products"`
}

// MovementReportDTO contagens de movimentações e taxa de entrada do período.
type MovementReportDTO struct {
	Period    string  `json:"period"` // today | week | month
	Total     int     `json:"total"`
	Entries   int     `json:"entries"`
	Exits     int     `json:"exits"`
	EntryRate float64 `json:"entry_rate"` // percentual de entradas sobre o total
}

// RouteDecisionResponse resultado da avaliação de navegação.
type RouteDecisionResponse struct {
	Path       string `json:"path"`
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// NotificationResponse saída de uma notificação.
type NotificationResponse struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	RelatedEntityType string    `json:"related_entity_type,omitempty"`
	RelatedEntityID   string    `json:"related_entity_id,omitempty"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
}
