package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/application/ledger"
	"github.com/ddik-sports/ddik-api/internal/application/orders"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { cp := *p; r.products[p.ID] = &cp; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) Update(p *entity.Product) error { cp := *p; r.products[p.ID] = &cp; return nil }
func (r *fakeProductRepo) UpdateStock(productID string, newStock int) error {
	p, ok := r.products[productID]
	if !ok {
		return errors.New("produto inexistente")
	}
	p.CurrentStock = newStock
	return nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListActive() ([]*entity.Product, error)           { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                           { return nil }

type fakeMovementRepo struct {
	movements  []*entity.StockMovement
	failCreate error
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}
func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }
func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type fakeSaleRepo struct{ sales []*entity.Sale }

func (r *fakeSaleRepo) Create(s *entity.Sale) error { cp := *s; r.sales = append(r.sales, &cp); return nil }
func (r *fakeSaleRepo) ListByPeriod(from, to time.Time) ([]*entity.Sale, error) {
	return r.sales, nil
}

type fakeNotificationRepo struct{ notifications []*entity.Notification }

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}
func (r *fakeNotificationRepo) ListByUser(userID string, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	return r.notifications, nil
}
func (r *fakeNotificationRepo) MarkRead(id, userID string) error { return nil }

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (r *fakeOrderRepo) Create(o *entity.Order) error { cp := *o; r.orders[o.ID] = &cp; return nil }

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) { return r.GetByID(id) }

func (r *fakeOrderRepo) UpdateStatus(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// fakeFulfillmentRunner executa o callback com os fakes e desfaz estoque,
// movimentações e encomendas quando o callback falha.
type fakeFulfillmentRunner struct {
	productRepo      *fakeProductRepo
	movementRepo     *fakeMovementRepo
	saleRepo         *fakeSaleRepo
	notificationRepo *fakeNotificationRepo
	orderRepo        *fakeOrderRepo
}

func (r *fakeFulfillmentRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	return r.RunFulfillment(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		notificationRepo repository.NotificationRepository,
		_ repository.OrderRepository,
	) error {
		return fn(productRepo, movementRepo, saleRepo, notificationRepo)
	})
}

func (r *fakeFulfillmentRunner) RunFulfillment(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	notificationRepo repository.NotificationRepository,
	orderRepo repository.OrderRepository,
) error) error {
	stocks := make(map[string]int, len(r.productRepo.products))
	for id, p := range r.productRepo.products {
		stocks[id] = p.CurrentStock
	}
	ordersBefore := make(map[string]entity.Order, len(r.orderRepo.orders))
	for id, o := range r.orderRepo.orders {
		ordersBefore[id] = *o
	}
	nMov := len(r.movementRepo.movements)

	if err := fn(r.productRepo, r.movementRepo, r.saleRepo, r.notificationRepo, r.orderRepo); err != nil {
		for id, stock := range stocks {
			r.productRepo.products[id].CurrentStock = stock
		}
		for id := range r.orderRepo.orders {
			before, ok := ordersBefore[id]
			if !ok {
				delete(r.orderRepo.orders, id)
				continue
			}
			cp := before
			r.orderRepo.orders[id] = &cp
		}
		r.movementRepo.movements = r.movementRepo.movements[:nMov]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "00000000-0000-0000-0000-0000000000aa"
	testOrderID   = "00000000-0000-0000-0000-0000000000bb"
)

func buildOrders(productStock int, orderStatus string) (*orders.OrderUseCase, *fakeFulfillmentRunner) {
	product := &entity.Product{
		ID:            testProductID,
		SKU:           "CAM-001",
		Name:          "Camisa Oficial",
		CurrentStock:  productStock,
		MinimumStock:  0,
		PurchasePrice: decimal.NewFromInt(60),
		SalePrice:     decimal.NewFromInt(100),
		IsActive:      true,
	}
	runner := &fakeFulfillmentRunner{
		productRepo:      &fakeProductRepo{products: map[string]*entity.Product{product.ID: product}},
		movementRepo:     &fakeMovementRepo{},
		saleRepo:         &fakeSaleRepo{},
		notificationRepo: &fakeNotificationRepo{},
		orderRepo:        &fakeOrderRepo{orders: map[string]*entity.Order{}},
	}
	if orderStatus != "" {
		runner.orderRepo.orders[testOrderID] = &entity.Order{
			ID:        testOrderID,
			ProductID: testProductID,
			Quantity:  5,
			Status:    orderStatus,
			CreatedBy: "u1",
			CreatedAt: time.Now(),
		}
	}
	stockLedger := ledger.NewStockLedgerUseCase(runner, runner.productRepo)
	uc := orders.NewOrderUseCase(runner, stockLedger, runner.orderRepo, runner.productRepo)
	return uc, runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_NaoReservaEstoque(t *testing.T) {
	uc, runner := buildOrders(10, "")

	out, err := uc.Create("u1", dto.CreateOrderRequest{ProductID: testProductID, Quantity: 3, Size: "M"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, "Camisa Oficial", out.ProductName)
	assert.Nil(t, out.DeliveredAt)

	p, _ := runner.productRepo.GetByID(testProductID)
	assert.Equal(t, 10, p.CurrentStock, "criar encomenda não toca o estoque")
	assert.Empty(t, runner.movementRepo.movements)
}

func TestOrderCreate_Validacao(t *testing.T) {
	uc, _ := buildOrders(10, "")

	_, err := uc.Create("u1", dto.CreateOrderRequest{ProductID: "", Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("u1", dto.CreateOrderRequest{ProductID: testProductID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("u1", dto.CreateOrderRequest{ProductID: "nao-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderComplete_AplicaEntradaEMarcaEntregue(t *testing.T) {
	uc, runner := buildOrders(10, entity.OrderStatusPending)

	out, err := uc.Complete(context.Background(), testOrderID, "u2")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
	require.NotNil(t, out.DeliveredAt)

	p, _ := runner.productRepo.GetByID(testProductID)
	assert.Equal(t, 15, p.CurrentStock, "concluir soma a quantidade encomendada")

	require.Len(t, runner.movementRepo.movements, 1)
	mov := runner.movementRepo.movements[0]
	assert.Equal(t, entity.MovementTypeEntry, mov.MovementType)
	assert.Equal(t, 5, mov.Quantity)
	assert.Equal(t, "Encomenda recebida", mov.Reason)
	assert.Equal(t, testOrderID, mov.ReferenceNumber)
	assert.Equal(t, "u2", mov.CreatedBy)
}

func TestOrderComplete_SoEncomendaPendente(t *testing.T) {
	for _, status := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		uc, runner := buildOrders(10, status)

		_, err := uc.Complete(context.Background(), testOrderID, "u2")
		assert.ErrorIs(t, err, domain.ErrConflict, "status %s", status)

		p, _ := runner.productRepo.GetByID(testProductID)
		assert.Equal(t, 10, p.CurrentStock)
		assert.Empty(t, runner.movementRepo.movements)
	}
}

func TestOrderComplete_Inexistente(t *testing.T) {
	uc, _ := buildOrders(10, "")

	_, err := uc.Complete(context.Background(), testOrderID, "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderComplete_FalhaNoLedgerMantemPendente(t *testing.T) {
	uc, runner := buildOrders(10, entity.OrderStatusPending)
	runner.movementRepo.failCreate = errors.New("insert falhou")

	_, err := uc.Complete(context.Background(), testOrderID, "u2")
	require.Error(t, err)

	order, _ := runner.orderRepo.GetByID(testOrderID)
	assert.Equal(t, entity.OrderStatusPending, order.Status, "a encomenda continua pendente")
	assert.Nil(t, order.DeliveredAt)

	p, _ := runner.productRepo.GetByID(testProductID)
	assert.Equal(t, 10, p.CurrentStock, "o estoque volta ao valor original")
}

func TestOrderCancel_SemEfeitoNoEstoque(t *testing.T) {
	uc, runner := buildOrders(10, entity.OrderStatusPending)

	out, err := uc.Cancel(testOrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, out.Status)

	p, _ := runner.productRepo.GetByID(testProductID)
	assert.Equal(t, 10, p.CurrentStock)
	assert.Empty(t, runner.movementRepo.movements)
}

func TestOrderCancel_TerminalEhIrreversivel(t *testing.T) {
	for _, status := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		uc, _ := buildOrders(10, status)

		_, err := uc.Cancel(testOrderID)
		assert.ErrorIs(t, err, domain.ErrConflict, "status %s", status)
	}
}
