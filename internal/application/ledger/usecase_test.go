package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddik-sports/ddik-api/internal/application/ledger"
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

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

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
func (r *fakeProductRepo) Delete(id string) error                           { delete(r.products, id); return nil }

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

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) ListByPeriod(from, to time.Time) ([]*entity.Sale, error) {
	return r.sales, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(userID string, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepo) MarkRead(id, userID string) error { return nil }

// fakeTxRunner executa o callback com os fakes e desfaz os efeitos quando o
// callback falha, imitando o rollback da transação real.
type fakeTxRunner struct {
	productRepo      *fakeProductRepo
	movementRepo     *fakeMovementRepo
	saleRepo         *fakeSaleRepo
	notificationRepo *fakeNotificationRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	stocks := make(map[string]int, len(r.productRepo.products))
	for id, p := range r.productRepo.products {
		stocks[id] = p.CurrentStock
	}
	nMov, nSales, nNotifs := len(r.movementRepo.movements), len(r.saleRepo.sales), len(r.notificationRepo.notifications)

	if err := fn(r.productRepo, r.movementRepo, r.saleRepo, r.notificationRepo); err != nil {
		for id, stock := range stocks {
			r.productRepo.products[id].CurrentStock = stock
		}
		r.movementRepo.movements = r.movementRepo.movements[:nMov]
		r.saleRepo.sales = r.saleRepo.sales[:nSales]
		r.notificationRepo.notifications = r.notificationRepo.notifications[:nNotifs]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testProductID = "00000000-0000-0000-0000-0000000000aa"

func testProduct(stock, minimum int) *entity.Product {
	return &entity.Product{
		ID:            testProductID,
		SKU:           "CAM-001",
		Name:          "Camisa Oficial",
		CurrentStock:  stock,
		MinimumStock:  minimum,
		PurchasePrice: decimal.NewFromInt(60),
		SalePrice:     decimal.NewFromInt(100),
		IsActive:      true,
	}
}

func buildLedger(p *entity.Product) (*ledger.StockLedgerUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		productRepo:      newFakeProductRepo(p),
		movementRepo:     &fakeMovementRepo{},
		saleRepo:         &fakeSaleRepo{},
		notificationRepo: &fakeNotificationRepo{},
	}
	uc := ledger.NewStockLedgerUseCase(runner, runner.productRepo)
	return uc, runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ApplyAdjustment
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyAdjustment_EntradaSomaEstoque(t *testing.T) {
	uc, runner := buildLedger(testProduct(10, 2))

	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeEntry,
		Quantity:  5,
		Reason:    "Reposição",
		ActorID:   "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, out.CurrentStock)

	require.Len(t, runner.movementRepo.movements, 1)
	mov := runner.movementRepo.movements[0]
	assert.Equal(t, entity.MovementTypeEntry, mov.MovementType)
	assert.Equal(t, 5, mov.Quantity)
	assert.Equal(t, 10, mov.PreviousStock)
	assert.Equal(t, 15, mov.NewStock)
	assert.Equal(t, "u1", mov.CreatedBy)
}

func TestApplyAdjustment_SaidaSubtraiEstoque(t *testing.T) {
	uc, runner := buildLedger(testProduct(10, 2))

	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  4,
		Reason:    "Venda balcão",
		ActorID:   "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, out.CurrentStock)
	require.Len(t, runner.movementRepo.movements, 1)
	assert.Equal(t, 10, runner.movementRepo.movements[0].PreviousStock)
	assert.Equal(t, 6, runner.movementRepo.movements[0].NewStock)
}

func TestApplyAdjustment_SaidaMaiorQueEstoqueCortaEmZero(t *testing.T) {
	uc, runner := buildLedger(testProduct(3, 0))

	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  10,
		Reason:    "Saída",
		ActorID:   "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.CurrentStock, "estoque nunca fica negativo")

	mov := runner.movementRepo.movements[0]
	assert.Equal(t, 3, mov.PreviousStock)
	assert.Equal(t, 0, mov.NewStock, "a movimentação registra o antes/depois reais")
}

func TestApplyAdjustment_AjusteNegativoComSinal(t *testing.T) {
	uc, runner := buildLedger(testProduct(10, 0))

	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeAdjustment,
		Quantity:  -3,
		Reason:    "Contagem de inventário",
		ActorID:   "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, out.CurrentStock)
	assert.Equal(t, 3, runner.movementRepo.movements[0].Quantity,
		"a movimentação grava a quantidade em valor absoluto")
}

func TestApplyAdjustment_NaoIdempotente(t *testing.T) {
	uc, runner := buildLedger(testProduct(10, 0))

	in := ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  2,
		Reason:    "Venda",
		ActorID:   "u1",
	}
	_, err := uc.ApplyAdjustment(context.Background(), in)
	require.NoError(t, err)
	out, err := uc.ApplyAdjustment(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 6, out.CurrentStock, "repetir a chamada dobra o delta")
	assert.Len(t, runner.movementRepo.movements, 2)
}

func TestApplyAdjustment_DuasSaidasSobreUmaUnidade(t *testing.T) {
	uc, runner := buildLedger(testProduct(1, 0))

	// Duas saídas serializadas sobre a mesma unidade: a primeira leva o
	// estoque a zero, a segunda observa zero e corta em zero em vez de
	// entregar uma unidade fantasma.
	in := ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  1,
		Reason:    "Venda",
		ActorID:   "u1",
	}
	first, err := uc.ApplyAdjustment(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, first.CurrentStock)

	second, err := uc.ApplyAdjustment(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, second.CurrentStock)

	require.Len(t, runner.movementRepo.movements, 2)
	assert.Equal(t, 0, runner.movementRepo.movements[1].PreviousStock,
		"a segunda saída parte do estoque já zerado, não do valor antigo")
}

func TestApplyAdjustment_VendaComDesconto(t *testing.T) {
	uc, runner := buildLedger(testProduct(10, 0))

	// preço 100, desconto 10% → final 90; custo 60 → lucro (90−60)×2 = 60
	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  2,
		Reason:    "Venda",
		ActorID:   "u1",
		Sale: &ledger.SaleInput{
			Discount: decimal.NewFromInt(10),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, out.CurrentStock)

	require.Len(t, runner.saleRepo.sales, 1)
	sale := runner.saleRepo.sales[0]
	assert.True(t, sale.SalePrice.Equal(decimal.NewFromInt(90)), "preço final: %s", sale.SalePrice)
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(60)), "lucro: %s", sale.Profit)
	assert.True(t, sale.PurchasePrice.Equal(decimal.NewFromInt(60)))
}

func TestApplyAdjustment_VendaSoEmSaida(t *testing.T) {
	uc, _ := buildLedger(testProduct(10, 0))

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeEntry,
		Quantity:  2,
		ActorID:   "u1",
		Sale:      &ledger.SaleInput{},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyAdjustment_NotificaEstoqueBaixo(t *testing.T) {
	uc, runner := buildLedger(testProduct(5, 3))

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  2,
		Reason:    "Venda",
		ActorID:   "u1",
	})
	require.NoError(t, err)

	require.Len(t, runner.notificationRepo.notifications, 1)
	notif := runner.notificationRepo.notifications[0]
	assert.Equal(t, entity.NotificationTypeLowStock, notif.Type)
	assert.Equal(t, testProductID, notif.RelatedEntityID)
}

func TestApplyAdjustment_SemNotificacaoAcimaDoMinimo(t *testing.T) {
	uc, runner := buildLedger(testProduct(10, 3))

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  2,
		Reason:    "Venda",
		ActorID:   "u1",
	})
	require.NoError(t, err)
	assert.Empty(t, runner.notificationRepo.notifications)
}

func TestApplyAdjustment_FalhaNaMovimentacaoDesfazTudo(t *testing.T) {
	uc, runner := buildLedger(testProduct(10, 0))
	runner.movementRepo.failCreate = errors.New("insert falhou")

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: testProductID,
		Direction: entity.MovementTypeExit,
		Quantity:  4,
		Reason:    "Venda",
		ActorID:   "u1",
	})
	require.Error(t, err)

	p, _ := runner.productRepo.GetByID(testProductID)
	assert.Equal(t, 10, p.CurrentStock, "o estoque volta ao valor original")
	assert.Empty(t, runner.movementRepo.movements)
}

func TestApplyAdjustment_ProdutoInexistente(t *testing.T) {
	uc, _ := buildLedger(testProduct(10, 0))

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustmentInput{
		ProductID: "nao-existe",
		Direction: entity.MovementTypeExit,
		Quantity:  1,
		ActorID:   "u1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyAdjustment_ValidacaoDeEntrada(t *testing.T) {
	uc, _ := buildLedger(testProduct(10, 0))

	cases := []ledger.AdjustmentInput{
		{ProductID: "", Direction: entity.MovementTypeEntry, Quantity: 1},
		{ProductID: testProductID, Direction: "transfer", Quantity: 1},
		{ProductID: testProductID, Direction: entity.MovementTypeEntry, Quantity: 0},
		{ProductID: testProductID, Direction: entity.MovementTypeExit, Quantity: -2},
		{ProductID: testProductID, Direction: entity.MovementTypeAdjustment, Quantity: 0},
		{ProductID: testProductID, Direction: entity.MovementTypeExit, Quantity: 1,
			Sale: &ledger.SaleInput{Discount: decimal.NewFromInt(150)}},
	}
	for _, in := range cases {
		_, err := uc.ApplyAdjustment(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input: %+v", in)
	}
}
