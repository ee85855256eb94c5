package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para produtos. Depois da criação,
// CurrentStock só muda via movimentações do Ledger.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um produto novo. SKU duplicado devolve ErrDuplicate.
// CurrentStock inicial é o saldo de abertura; dali em diante, só o Ledger.
func (uc *ProductUseCase) Create(actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MinimumStock < 0 || in.MaximumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		ProductType:   in.ProductType,
		Size:          in.Size,
		CurrentStock:  in.CurrentStock,
		MinimumStock:  in.MinimumStock,
		MaximumStock:  in.MaximumStock,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		IsActive:      true,
		Location:      in.Location,
		ImageURL:      in.ImageURL,
		CreatedBy:     actorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devolve um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update atualiza um produto. Não permite modificar CurrentStock; estoque
// muda só via movimentações.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.ProductType != nil {
		product.ProductType = *in.ProductType
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumStock = *in.MinimumStock
	}
	if in.MaximumStock != nil {
		if *in.MaximumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MaximumStock = *in.MaximumStock
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Catalog devolve a visão reduzida do catálogo (só produtos ativos),
// destinada a usuários cliente.
func (uc *ProductUseCase) Catalog() ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.CatalogItemResponse{
			ID:           p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			Category:     p.Category,
			Size:         p.Size,
			CurrentStock: p.CurrentStock,
			SalePrice:    p.SalePrice,
			ImageURL:     p.ImageURL,
		})
	}
	return items, nil
}

// Delete remove um produto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		ProductType:   p.ProductType,
		Size:          p.Size,
		CurrentStock:  p.CurrentStock,
		MinimumStock:  p.MinimumStock,
		MaximumStock:  p.MaximumStock,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		IsActive:      p.IsActive,
		Location:      p.Location,
		ImageURL:      p.ImageURL,
		LowStock:      p.LowStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
