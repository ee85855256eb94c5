package repository

import (
	"time"

	"github.com/ddik-sports/ddik-api/internal/domain/entity"
)

// StockMovementRepository define o porto de persistência do log de
// movimentações (DIP). O log é append-only: não há Update nem Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
