package entity

import "time"

// Tipos de ocorrência.
const (
	IncidentTypeReturn = "return" // devolução
	IncidentTypeDamage = "damage" // avaria
	IncidentTypeLoss   = "loss"   // perda
	IncidentTypeTheft  = "theft"  // roubo
	IncidentTypeOther  = "other"
)

// Severidades de ocorrência.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Status de ocorrência. closed é terminal.
const (
	IncidentStatusOpen       = "open"
	IncidentStatusInProgress = "in_progress"
	IncidentStatusResolved   = "resolved"
	IncidentStatusClosed     = "closed"
)

// ValidIncidentType informa se o tipo é aceito.
func ValidIncidentType(t string) bool {
	switch t {
	case IncidentTypeReturn, IncidentTypeDamage, IncidentTypeLoss, IncidentTypeTheft, IncidentTypeOther:
		return true
	}
	return false
}

// ValidSeverity informa se a severidade é aceita.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ValidIncidentStatus informa se o status é aceito.
func ValidIncidentStatus(s string) bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusInProgress, IncidentStatusResolved, IncidentStatusClosed:
		return true
	}
	return false
}

// Incident registra uma ocorrência de estoque (devolução, avaria, perda,
// roubo). É informativa: não movimenta estoque por conta própria.
type Incident struct {
	ID           string
	ProductID    string
	IncidentType string
	Severity     string
	Quantity     int
	Description  string
	Resolution   string
	Status       string
	ReportedBy   string
	ResolvedBy   string
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Dados do produto quando carregados por join (listagens).
	ProductName string
	ProductSKU  string
}
