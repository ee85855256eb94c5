package repository

import "github.com/ddik-sports/ddik-api/internal/domain/entity"

// OrderRepository define o porto de persistência para Order (DIP).
// GetForUpdate bloqueia a linha dentro de uma transação, garantindo que duas
// conclusões concorrentes da mesma encomenda não dupliquem a entrada.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetForUpdate(id string) (*entity.Order, error)
	UpdateStatus(order *entity.Order) error
	List(limit, offset int) ([]*entity.Order, error)
}
