package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleInfo marca a saída como venda. SalePrice unitário antes do desconto;
// quando omitido, usa-se o preço de venda do produto.
type SaleInfo struct {
	SalePrice *decimal.Decimal `json:"sale_price"`
	Discount  decimal.Decimal  `json:"discount"` // percentual 0–100
}

// RegisterMovementRequest entrada para registrar uma movimentação de estoque.
type RegisterMovementRequest struct {
	ProductID string    `json:"product_id"`
	Direction string    `json:"direction"` // entry | exit | adjustment
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	Sale      *SaleInfo `json:"sale"`
}

// MovementResponse saída de uma movimentação registrada.
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	MovementType    string    `json:"movement_type"`
	Quantity        int       `json:"quantity"`
	PreviousStock   int       `json:"previous_stock"`
	NewStock        int       `json:"new_stock"`
	Reason          string    `json:"reason"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimentações.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
