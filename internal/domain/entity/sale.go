package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra uma venda gerada como efeito colateral de uma saída de
// estoque marcada como "vendida". SalePrice é o preço unitário já com
// desconto aplicado; PurchasePrice é o snapshot do custo no momento da venda.
type Sale struct {
	ID            string
	ProductID     string
	Quantity      int
	SalePrice     decimal.Decimal // unitário, pós-desconto
	PurchasePrice decimal.Decimal // snapshot no momento da venda
	Discount      decimal.Decimal // percentual (0–100)
	Profit        decimal.Decimal // (SalePrice − PurchasePrice) × Quantity
	SaleDate      time.Time
	CreatedBy     string
	CreatedAt     time.Time
}
