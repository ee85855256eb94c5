package ledger

import (
	"context"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
)

// ApplyFromRequest adapta o request HTTP ao caso de uso
// ApplyAdjustment(ctx, AdjustmentInput). Usar a partir de handlers HTTP que
// tenham o userID autenticado e um dto.RegisterMovementRequest.
func (uc *StockLedgerUseCase) ApplyFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*entity.Product, error) {
	input := AdjustmentInput{
		ProductID: in.ProductID,
		Direction: in.Direction,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
		ActorID:   userID,
	}
	if in.Sale != nil {
		input.Sale = &SaleInput{
			SalePrice: in.Sale.SalePrice,
			Discount:  in.Sale.Discount,
		}
	}
	return uc.ApplyAdjustment(ctx, input)
}
