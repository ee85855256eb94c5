package incidents_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/application/incidents"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory
// ──────────────────────────────────────────────────────────────────────────────

type fakeIncidentRepo struct {
	incidents map[string]*entity.Incident
}

func (r *fakeIncidentRepo) Create(i *entity.Incident) error {
	cp := *i
	r.incidents[i.ID] = &cp
	return nil
}

func (r *fakeIncidentRepo) GetByID(id string) (*entity.Incident, error) {
	i, ok := r.incidents[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeIncidentRepo) Update(i *entity.Incident) error {
	cp := *i
	r.incidents[i.ID] = &cp
	return nil
}

func (r *fakeIncidentRepo) List(limit, offset int) ([]*entity.Incident, error) {
	out := make([]*entity.Incident, 0, len(r.incidents))
	for _, i := range r.incidents {
		cp := *i
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProductRepo struct {
	product *entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.product != nil && r.product.ID == id {
		cp := *r.product
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error)   { return r.GetByID(id) }
func (r *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *fakeProductRepo) UpdateStock(productID string, newStock int) error  { return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListActive() ([]*entity.Product, error)           { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                           { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID  = "00000000-0000-0000-0000-0000000000aa"
	testIncidentID = "00000000-0000-0000-0000-0000000000cc"
)

func buildIncidents(status string) (*incidents.IncidentUseCase, *fakeIncidentRepo) {
	incidentRepo := &fakeIncidentRepo{incidents: map[string]*entity.Incident{}}
	if status != "" {
		incidentRepo.incidents[testIncidentID] = &entity.Incident{
			ID:           testIncidentID,
			ProductID:    testProductID,
			IncidentType: entity.IncidentTypeDamage,
			Severity:     entity.SeverityMedium,
			Quantity:     2,
			Description:  "Caixa molhada na entrega",
			Status:       status,
			ReportedBy:   "u1",
			CreatedAt:    time.Now(),
		}
	}
	productRepo := &fakeProductRepo{product: &entity.Product{
		ID:   testProductID,
		SKU:  "CAM-001",
		Name: "Camisa Oficial",
	}}
	return incidents.NewIncidentUseCase(incidentRepo, productRepo), incidentRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestIncidentReport_AbreComStatusOpen(t *testing.T) {
	uc, _ := buildIncidents("")

	out, err := uc.Report("u1", dto.ReportIncidentRequest{
		ProductID:    testProductID,
		IncidentType: entity.IncidentTypeTheft,
		Severity:     entity.SeverityHigh,
		Quantity:     1,
		Description:  "Furto no balcão",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusOpen, out.Status)
	assert.Equal(t, "u1", out.ReportedBy)
	assert.Equal(t, "Camisa Oficial", out.ProductName)
	assert.Nil(t, out.ResolvedAt)
}

func TestIncidentReport_Validacao(t *testing.T) {
	uc, _ := buildIncidents("")

	cases := []dto.ReportIncidentRequest{
		{ProductID: "", IncidentType: entity.IncidentTypeLoss, Severity: entity.SeverityLow, Quantity: 1, Description: "x"},
		{ProductID: testProductID, IncidentType: "explosion", Severity: entity.SeverityLow, Quantity: 1, Description: "x"},
		{ProductID: testProductID, IncidentType: entity.IncidentTypeLoss, Severity: "extreme", Quantity: 1, Description: "x"},
		{ProductID: testProductID, IncidentType: entity.IncidentTypeLoss, Severity: entity.SeverityLow, Quantity: 0, Description: "x"},
		{ProductID: testProductID, IncidentType: entity.IncidentTypeLoss, Severity: entity.SeverityLow, Quantity: 1, Description: ""},
	}
	for _, in := range cases {
		_, err := uc.Report("u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input: %+v", in)
	}

	_, err := uc.Report("u1", dto.ReportIncidentRequest{
		ProductID:    "nao-existe",
		IncidentType: entity.IncidentTypeLoss,
		Severity:     entity.SeverityLow,
		Quantity:     1,
		Description:  "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIncidentUpdateStatus_ResolvedCarimbaResolucao(t *testing.T) {
	uc, _ := buildIncidents(entity.IncidentStatusInProgress)

	out, err := uc.UpdateStatus(testIncidentID, "u2", dto.UpdateIncidentStatusRequest{
		Status:     entity.IncidentStatusResolved,
		Resolution: "Produto trocado pelo fornecedor",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusResolved, out.Status)
	require.NotNil(t, out.ResolvedAt)
	assert.Equal(t, "u2", out.ResolvedBy)
	assert.Equal(t, "Produto trocado pelo fornecedor", out.Resolution)
}

func TestIncidentUpdateStatus_ReabrirLimpaResolucao(t *testing.T) {
	uc, repo := buildIncidents(entity.IncidentStatusInProgress)

	_, err := uc.UpdateStatus(testIncidentID, "u2", dto.UpdateIncidentStatusRequest{Status: entity.IncidentStatusResolved})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(testIncidentID, "u3", dto.UpdateIncidentStatusRequest{Status: entity.IncidentStatusInProgress})
	require.NoError(t, err)
	assert.Nil(t, out.ResolvedAt)
	assert.Empty(t, out.ResolvedBy)

	stored, _ := repo.GetByID(testIncidentID)
	assert.Nil(t, stored.ResolvedAt)
}

func TestIncidentUpdateStatus_SoResolvedCarimba(t *testing.T) {
	// Qualquer destino que não seja resolved limpa resolved_at/resolved_by,
	// inclusive closed.
	uc, _ := buildIncidents(entity.IncidentStatusOpen)

	out, err := uc.UpdateStatus(testIncidentID, "u2", dto.UpdateIncidentStatusRequest{Status: entity.IncidentStatusClosed})
	require.NoError(t, err)
	assert.Nil(t, out.ResolvedAt, "fechar direto não carimba resolução")
	assert.Empty(t, out.ResolvedBy)
}

func TestIncidentUpdateStatus_FecharDepoisDeResolvidoLimpaCarimbo(t *testing.T) {
	uc, repo := buildIncidents(entity.IncidentStatusOpen)

	first, err := uc.UpdateStatus(testIncidentID, "u2", dto.UpdateIncidentStatusRequest{Status: entity.IncidentStatusResolved})
	require.NoError(t, err)
	require.NotNil(t, first.ResolvedAt)

	out, err := uc.UpdateStatus(testIncidentID, "u3", dto.UpdateIncidentStatusRequest{Status: entity.IncidentStatusClosed})
	require.NoError(t, err)
	assert.Nil(t, out.ResolvedAt)
	assert.Empty(t, out.ResolvedBy)

	stored, _ := repo.GetByID(testIncidentID)
	assert.Nil(t, stored.ResolvedAt)
}

func TestIncidentUpdateStatus_ClosedEhTerminal(t *testing.T) {
	uc, _ := buildIncidents(entity.IncidentStatusClosed)

	for _, status := range []string{
		entity.IncidentStatusOpen,
		entity.IncidentStatusInProgress,
		entity.IncidentStatusResolved,
	} {
		_, err := uc.UpdateStatus(testIncidentID, "u2", dto.UpdateIncidentStatusRequest{Status: status})
		assert.ErrorIs(t, err, domain.ErrConflict, "destino %s", status)
	}
}

func TestIncidentUpdateStatus_StatusInvalido(t *testing.T) {
	uc, _ := buildIncidents(entity.IncidentStatusOpen)

	_, err := uc.UpdateStatus(testIncidentID, "u2", dto.UpdateIncidentStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIncidentUpdateStatus_Inexistente(t *testing.T) {
	uc, _ := buildIncidents("")

	_, err := uc.UpdateStatus(testIncidentID, "u2", dto.UpdateIncidentStatusRequest{Status: entity.IncidentStatusResolved})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
