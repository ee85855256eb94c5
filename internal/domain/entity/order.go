package entity

import "time"

// Status de encomenda. pending é o único estado não terminal.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order representa uma encomenda de reposição registrada pela equipe.
// Não reserva estoque: a entrada só acontece na conclusão, via Ledger.
type Order struct {
	ID          string
	ProductID   string
	Quantity    int
	Size        string
	Notes       string
	Status      string // pending, completed, cancelled
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeliveredAt *time.Time // preenchido na conclusão

	// Dados do produto quando carregados por join (listagens).
	ProductName string
	ProductSKU  string
}

// Terminal informa se a encomenda já chegou a um estado final.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}
