package dto

import "time"

// ReportIncidentRequest entrada para registrar uma ocorrência.
type ReportIncidentRequest struct {
	ProductID    string `json:"product_id"`
	IncidentType string `json:"incident_type"` // return | damage | loss | theft | other
	Severity     string `json:"severity"`      // low | medium | high | critical
	Quantity     int    `json:"quantity"`
	Description  string `json:"description"`
}

// UpdateIncidentStatusRequest entrada para transicionar o status.
type UpdateIncidentStatusRequest struct {
	Status     string `json:"status"` // open | in_progress | resolved | closed
	Resolution string `json:"resolution"`
}

// IncidentResponse saída de uma ocorrência.
type IncidentResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"product_id"`
	ProductName  string     `json:"product_name,omitempty"`
	ProductSKU   string     `json:"product_sku,omitempty"`
	IncidentType string     `json:"incident_type"`
	Severity     string     `json:"severity"`
	Quantity     int        `json:"quantity"`
	Description  string     `json:"description"`
	Resolution   string     `json:"resolution,omitempty"`
	Status       string     `json:"status"`
	ReportedBy   string     `json:"reported_by"`
	ResolvedBy   string     `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IncidentListResponse lista paginada de ocorrências.
type IncidentListResponse struct {
	Items []IncidentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
