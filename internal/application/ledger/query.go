package ledger

import (
	"time"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// MovementQueryUseCase leitura do log de movimentações. Separado do caso de
// uso de escrita porque não precisa de transação nem de lock.
type MovementQueryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase constrói o caso de uso de consulta.
func NewMovementQueryUseCase(movementRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

// List lista movimentações de todos os produtos, mais recentes primeiro.
func (uc *MovementQueryUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

// ListByProduct lista o histórico de um produto, com filtro de período
// opcional.
func (uc *MovementQueryUseCase) ListByProduct(productID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementListResponse(list, limit, offset), nil
}

func toMovementListResponse(list []*entity.StockMovement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

// ToMovementResponse converte a entidade para o DTO de saída.
func ToMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		MovementType:    m.MovementType,
		Quantity:        m.Quantity,
		PreviousStock:   m.PreviousStock,
		NewStock:        m.NewStock,
		Reason:          m.Reason,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}
