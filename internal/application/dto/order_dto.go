package dto

import "time"

// CreateOrderRequest entrada para registrar uma encomenda.
type CreateOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Notes     string `json:"notes"`
}

// OrderResponse saída de uma encomenda.
type OrderResponse struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"product_id"`
	ProductName string     `json:"product_name,omitempty"`
	ProductSKU  string     `json:"product_sku,omitempty"`
	Quantity    int        `json:"quantity"`
	Size        string     `json:"size,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// OrderListResponse lista paginada de encomendas.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
