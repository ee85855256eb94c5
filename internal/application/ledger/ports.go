package ledger

import (
	"context"

	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que atualização de estoque, registro
// de movimentação, venda e notificação sejam gravados todos ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		notificationRepo repository.NotificationRepository,
	) error) error
}
