package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	ProductType   string          `json:"product_type"`
	Size          string          `json:"size"`
	CurrentStock  int             `json:"current_stock"`
	MinimumStock  int             `json:"minimum_stock"`
	MaximumStock  int             `json:"maximum_stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Location      string          `json:"location"`
	ImageURL      string          `json:"image_url"`
}

// UpdateProductRequest entrada para atualizar um produto. CurrentStock não
// entra aqui: estoque só muda via movimentações do Ledger.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	ProductType   *string          `json:"product_type"`
	Size          *string          `json:"size"`
	MinimumStock  *int             `json:"minimum_stock"`
	MaximumStock  *int             `json:"maximum_stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	IsActive      *bool            `json:"is_active"`
	Location      *string          `json:"location"`
	ImageURL      *string          `json:"image_url"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	ProductType   string          `json:"product_type"`
	Size          string          `json:"size"`
	CurrentStock  int             `json:"current_stock"`
	MinimumStock  int             `json:"minimum_stock"`
	MaximumStock  int             `json:"maximum_stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	IsActive      bool            `json:"is_active"`
	Location      string          `json:"location"`
	ImageURL      string          `json:"image_url"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CatalogItemResponse visão reduzida do catálogo para clientes.
type CatalogItemResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Size         string          `json:"size"`
	CurrentStock int             `json:"current_stock"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ImageURL     string          `json:"image_url"`
}
