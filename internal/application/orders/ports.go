package orders

import (
	"context"

	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// FulfillmentTxRunner executa a conclusão de encomenda em uma transação que
// inclui o repositório de encomendas além dos repositórios do Ledger: a
// entrada de estoque e a mudança de status fazem commit juntas ou nenhuma.
type FulfillmentTxRunner interface {
	RunFulfillment(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		notificationRepo repository.NotificationRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
