package repository

import "github.com/ddik-sports/ddik-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
// GetForUpdate só tem efeito dentro de uma transação (SELECT ... FOR UPDATE);
// é o que fecha a janela de lost update nas movimentações concorrentes.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, newStock int) error
	List(limit, offset int) ([]*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	Delete(id string) error
}
