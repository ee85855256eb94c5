package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto (SKU) do estoque da loja.
// CurrentStock é mantido exclusivamente pelo Ledger de estoque; os preços
// usam decimal para evitar erros de arredondamento em lucro/desconto.
type Product struct {
	ID            string
	SKU           string // código único de negócio
	Name          string
	Description   string
	Category      string
	ProductType   string
	Size          string
	CurrentStock  int // nunca negativo (o Ledger faz clamp em zero)
	MinimumStock  int
	MaximumStock  int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	IsActive      bool
	Location      string
	ImageURL      string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock indica se o produto está no nível mínimo ou abaixo dele.
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}
