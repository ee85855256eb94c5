package entity

import "time"

// Tipos de notificação.
const (
	NotificationTypeLowStock = "low_stock"
	NotificationTypeInfo     = "info"
)

// Notification é um aviso para a equipe (ex.: estoque baixo gerado pelo
// Ledger). UserID vazio significa broadcast para todos os usuários de staff.
type Notification struct {
	ID                string
	UserID            string
	Type              string
	Title             string
	Message           string
	RelatedEntityType string
	RelatedEntityID   string
	IsRead            bool
	CreatedAt         time.Time
}
