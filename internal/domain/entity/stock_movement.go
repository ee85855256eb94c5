package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementTypeEntry      = "entry"      // entrada
	MovementTypeExit       = "exit"       // saída
	MovementTypeAdjustment = "adjustment" // ajuste
)

// ValidMovementType informa se o tipo é um dos aceitos pelo Ledger.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit || t == MovementTypeAdjustment
}

// StockMovement é o registro imutável de uma mudança de estoque.
// PreviousStock e NewStock capturam o antes/depois para auditoria; o
// invariante NewStock − PreviousStock = ±Quantity vale por construção no
// Ledger, nunca por edição posterior.
type StockMovement struct {
	ID              string
	ProductID       string
	MovementType    string // entry, exit, adjustment
	Quantity        int    // sempre positivo; o sinal vem do tipo
	PreviousStock   int
	NewStock        int
	Reason          string
	ReferenceNumber string // encomenda, venda, nota de ajuste, etc.
	Notes           string
	CreatedBy       string // UserID
	CreatedAt       time.Time
}
