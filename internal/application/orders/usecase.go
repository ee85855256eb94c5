package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/application/ledger"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// OrderUseCase gerencia o ciclo de vida das encomendas:
// pending → completed (com entrada de estoque via Ledger) ou
// pending → cancelled (sem efeito no estoque). Ambos os destinos são
// terminais. Criar uma encomenda não reserva estoque.
type OrderUseCase struct {
	txRunner    FulfillmentTxRunner
	stockLedger *ledger.StockLedgerUseCase
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(
	txRunner FulfillmentTxRunner,
	stockLedger *ledger.StockLedgerUseCase,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		stockLedger: stockLedger,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Create registra uma encomenda pendente. O estoque do produto não é tocado
// até a conclusão.
func (uc *OrderUseCase) Create(actorID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Size:      in.Size,
		Notes:     in.Notes,
		Status:    entity.OrderStatusPending,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	order.ProductName = product.Name
	order.ProductSKU = product.SKU
	return toOrderResponse(order), nil
}

// Complete conclui uma encomenda pendente: dentro de uma única transação,
// aplica a entrada de estoque pelo Ledger e marca a encomenda como completed
// com delivered_at. Se o Ledger falhar, a transação inteira volta e a
// encomenda continua pendente.
func (uc *OrderUseCase) Complete(ctx context.Context, orderID, actorID string) (*dto.OrderResponse, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	var completed *entity.Order
	err := uc.txRunner.RunFulfillment(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		notificationRepo repository.NotificationRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return domain.ErrConflict
		}

		now := time.Now()
		// Entrada de estoque antes da mudança de status; mesmo commit.
		_, err = uc.stockLedger.ApplyAdjustmentInTx(productRepo, movementRepo, saleRepo, notificationRepo, ledger.AdjustmentInput{
			ProductID:       order.ProductID,
			Direction:       entity.MovementTypeEntry,
			Quantity:        order.Quantity,
			Reason:          "Encomenda recebida",
			ReferenceNumber: order.ID,
			ActorID:         actorID,
		}, now)
		if err != nil {
			return err
		}

		order.Status = entity.OrderStatusCompleted
		order.DeliveredAt = &now
		order.UpdatedAt = now
		if err := orderRepo.UpdateStatus(order); err != nil {
			return err
		}
		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(completed), nil
}

// Cancel cancela uma encomenda pendente. Sem efeito no estoque; irreversível.
func (uc *OrderUseCase) Cancel(orderID string) (*dto.OrderResponse, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusPending {
		return nil, domain.ErrConflict
	}
	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateStatus(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista encomendas com nome/SKU do produto, mais recentes primeiro.
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		ProductSKU:  o.ProductSKU,
		Quantity:    o.Quantity,
		Size:        o.Size,
		Notes:       o.Notes,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		DeliveredAt: o.DeliveredAt,
	}
}
