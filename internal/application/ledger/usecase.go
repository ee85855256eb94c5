package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// StockLedgerUseCase aplica ajustes de quantidade ao estoque de um produto e
// produz a trilha auditável: movimentação imutável com estoque antes/depois,
// venda opcional e notificação de estoque baixo. Tudo dentro de uma única
// transação com bloqueio de linha (SELECT FOR UPDATE), o que fecha tanto o
// lost update entre dois operadores quanto a janela de falha parcial entre
// atualização de estoque e gravação do log.
type StockLedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewStockLedgerUseCase constrói o caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner, productRepo: productRepo}
}

// SaleInput dados da venda quando a saída representa uma venda e não uma
// simples remoção. SalePrice nulo usa o preço de venda atual do produto.
type SaleInput struct {
	SalePrice *decimal.Decimal
	Discount  decimal.Decimal // percentual 0–100
}

// AdjustmentInput entrada para aplicar um ajuste de estoque.
// Para entry/exit: Quantity > 0. Para adjustment: Quantity != 0, com o sinal
// indicando a direção da correção. Sale só é aceito em exit.
type AdjustmentInput struct {
	ProductID       string
	Direction       string // entry | exit | adjustment
	Quantity        int
	Reason          string
	Notes           string
	ReferenceNumber string
	ActorID         string
	Sale            *SaleInput
}

func (in *AdjustmentInput) validate() error {
	if in.ProductID == "" || !entity.ValidMovementType(in.Direction) {
		return domain.ErrInvalidInput
	}
	switch in.Direction {
	case entity.MovementTypeEntry, entity.MovementTypeExit:
		if in.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjustment:
		if in.Quantity == 0 {
			return domain.ErrInvalidInput
		}
	}
	if in.Sale != nil {
		if in.Direction != entity.MovementTypeExit {
			return domain.ErrInvalidInput
		}
		if in.Sale.Discount.IsNegative() || in.Sale.Discount.GreaterThan(decimal.NewFromInt(100)) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ApplyAdjustment inicia uma transação, bloqueia a linha do produto, aplica o
// delta com clamp em zero e grava movimentação, venda (se houver) e
// notificação de estoque baixo. Commit ou rollback de tudo; devolve o
// snapshot atualizado do produto.
//
// A operação não é idempotente por construção: repetir a mesma chamada gera
// uma segunda movimentação e dobra o delta.
func (uc *StockLedgerUseCase) ApplyAdjustment(ctx context.Context, input AdjustmentInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Valida existência antes de abrir a transação.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var updated *entity.Product
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		notificationRepo repository.NotificationRepository,
	) error {
		updated, err = uc.ApplyAdjustmentInTx(productRepo, movementRepo, saleRepo, notificationRepo, input, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ApplyAdjustmentInTx executa o ajuste usando os repositórios fornecidos
// (mesma transação do caller). Usado pela conclusão de encomendas para que a
// entrada de estoque e a mudança de status da encomenda façam commit juntas.
func (uc *StockLedgerUseCase) ApplyAdjustmentInTx(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	notificationRepo repository.NotificationRepository,
	input AdjustmentInput,
	now time.Time,
) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Bloqueia a linha do produto: leituras concorrentes do mesmo estoque
	// serializam aqui em vez de se sobrescreverem.
	product, err := productRepo.GetForUpdate(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	previous := product.CurrentStock
	newStock := applyDelta(previous, input.Direction, input.Quantity)

	if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
		return nil, err
	}

	movement := &entity.StockMovement{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		MovementType:    input.Direction,
		Quantity:        abs(input.Quantity),
		PreviousStock:   previous,
		NewStock:        newStock,
		Reason:          input.Reason,
		ReferenceNumber: input.ReferenceNumber,
		Notes:           input.Notes,
		CreatedBy:       input.ActorID,
		CreatedAt:       now,
	}
	if err := movementRepo.Create(movement); err != nil {
		return nil, err
	}

	if input.Sale != nil {
		sale := buildSale(product, input, now)
		if err := saleRepo.Create(sale); err != nil {
			return nil, err
		}
	}

	if newStock <= product.MinimumStock {
		notification := &entity.Notification{
			ID:                uuid.New().String(),
			Type:              entity.NotificationTypeLowStock,
			Title:             "Estoque baixo",
			Message:           fmt.Sprintf("%s (SKU %s) está com %d unidade(s), mínimo %d", product.Name, product.SKU, newStock, product.MinimumStock),
			RelatedEntityType: "product",
			RelatedEntityID:   product.ID,
			CreatedAt:         now,
		}
		if err := notificationRepo.Create(notification); err != nil {
			return nil, err
		}
	}

	product.CurrentStock = newStock
	product.UpdatedAt = now
	return product, nil
}

// applyDelta calcula o novo estoque. Saídas nunca deixam o estoque negativo:
// o valor é cortado em zero, e a movimentação registra o antes/depois reais.
func applyDelta(stock int, direction string, quantity int) int {
	switch direction {
	case entity.MovementTypeEntry:
		return stock + quantity
	case entity.MovementTypeExit:
		if quantity > stock {
			return 0
		}
		return stock - quantity
	default: // adjustment: quantidade com sinal
		if stock+quantity < 0 {
			return 0
		}
		return stock + quantity
	}
}

// buildSale monta o registro de venda: preço final pós-desconto e lucro
// calculado com o custo do produto no momento da venda.
func buildSale(product *entity.Product, input AdjustmentInput, now time.Time) *entity.Sale {
	salePrice := product.SalePrice
	if input.Sale.SalePrice != nil {
		salePrice = *input.Sale.SalePrice
	}
	// finalPrice = salePrice × (1 − discount/100)
	hundred := decimal.NewFromInt(100)
	finalPrice := salePrice.Mul(hundred.Sub(input.Sale.Discount)).Div(hundred)
	qty := decimal.NewFromInt(int64(input.Quantity))
	profit := finalPrice.Sub(product.PurchasePrice).Mul(qty)

	return &entity.Sale{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Quantity:      input.Quantity,
		SalePrice:     finalPrice,
		PurchasePrice: product.PurchasePrice,
		Discount:      input.Sale.Discount,
		Profit:        profit,
		SaleDate:      now,
		CreatedBy:     input.ActorID,
		CreatedAt:     now,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
