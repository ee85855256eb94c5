package repository

import (
	"time"

	"github.com/ddik-sports/ddik-api/internal/domain/entity"
)

// SaleRepository define o porto de persistência para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	ListByPeriod(from, to time.Time) ([]*entity.Sale, error)
}
