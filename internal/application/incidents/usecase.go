package incidents

import (
	"time"

	"github.com/google/uuid"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// IncidentUseCase gerencia ocorrências de estoque. Ocorrências são
// informativas: nenhuma transição mexe no estoque do produto. O ajuste
// correspondente, quando cabível, é feito à parte pelo Ledger.
type IncidentUseCase struct {
	incidentRepo repository.IncidentRepository
	productRepo  repository.ProductRepository
}

// NewIncidentUseCase constrói o caso de uso.
func NewIncidentUseCase(incidentRepo repository.IncidentRepository, productRepo repository.ProductRepository) *IncidentUseCase {
	return &IncidentUseCase{incidentRepo: incidentRepo, productRepo: productRepo}
}

// Report registra uma ocorrência nova com status open.
func (uc *IncidentUseCase) Report(actorID string, in dto.ReportIncidentRequest) (*dto.IncidentResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidIncidentType(in.IncidentType) || !entity.ValidSeverity(in.Severity) {
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
	incident := &entity.Incident{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		IncidentType: in.IncidentType,
		Severity:     in.Severity,
		Quantity:     in.Quantity,
		Description:  in.Description,
		Status:       entity.IncidentStatusOpen,
		ReportedBy:   actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.incidentRepo.Create(incident); err != nil {
		return nil, err
	}
	incident.ProductName = product.Name
	incident.ProductSKU = product.SKU
	return toIncidentResponse(incident), nil
}

// UpdateStatus transiciona a ocorrência. closed é terminal: qualquer
// tentativa de sair dele retorna ErrConflict. resolved é o único estado que
// carimba resolved_at/resolved_by; qualquer outro destino (inclusive closed)
// limpa os dois campos.
func (uc *IncidentUseCase) UpdateStatus(incidentID, actorID string, in dto.UpdateIncidentStatusRequest) (*dto.IncidentResponse, error) {
	if incidentID == "" || !entity.ValidIncidentStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	incident, err := uc.incidentRepo.GetByID(incidentID)
	if err != nil {
		return nil, err
	}
	if incident == nil {
		return nil, domain.ErrNotFound
	}
	if incident.Status == entity.IncidentStatusClosed {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	if in.Status == entity.IncidentStatusResolved {
		incident.ResolvedAt = &now
		incident.ResolvedBy = actorID
	} else {
		incident.ResolvedAt = nil
		incident.ResolvedBy = ""
	}
	if in.Resolution != "" {
		incident.Resolution = in.Resolution
	}
	incident.Status = in.Status
	incident.UpdatedAt = now

	if err := uc.incidentRepo.Update(incident); err != nil {
		return nil, err
	}
	return toIncidentResponse(incident), nil
}

// List lista ocorrências com nome/SKU do produto, mais recentes primeiro.
func (uc *IncidentUseCase) List(limit, offset int) (*dto.IncidentListResponse, error) {
	list, err := uc.incidentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidentResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIncidentResponse(i))
	}
	return &dto.IncidentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toIncidentResponse(i *entity.Incident) *dto.IncidentResponse {
	if i == nil {
		return nil
	}
	return &dto.IncidentResponse{
		ID:           i.ID,
		ProductID:    i.ProductID,
		ProductName:  i.ProductName,
		ProductSKU:   i.ProductSKU,
		IncidentType: i.IncidentType,
		Severity:     i.Severity,
		Quantity:     i.Quantity,
		Description:  i.Description,
		Resolution:   i.Resolution,
		Status:       i.Status,
		ReportedBy:   i.ReportedBy,
		ResolvedBy:   i.ResolvedBy,
		ResolvedAt:   i.ResolvedAt,
		CreatedAt:    i.CreatedAt,
	}
}
