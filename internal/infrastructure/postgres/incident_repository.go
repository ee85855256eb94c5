package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

const incidentColumns = `id, product_id, incident_type, severity, quantity, description, resolution, status, reported_by, resolved_by, resolved_at, created_at, updated_at`

// IncidentRepo implementação do porto IncidentRepository sobre PostgreSQL.
type IncidentRepo struct {
	q Querier
}

// NewIncidentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewIncidentRepository(q Querier) *IncidentRepo {
	return &IncidentRepo{q: q}
}

// Create persiste uma ocorrência.
func (r *IncidentRepo) Create(incident *entity.Incident) error {
	query := `
		INSERT INTO incidents (` + incidentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		incident.ID, incident.ProductID, incident.IncidentType, incident.Severity,
		incident.Quantity, incident.Description, incident.Resolution, incident.Status,
		incident.ReportedBy, incident.ResolvedBy, incident.ResolvedAt,
		incident.CreatedAt, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// GetByID obtém uma ocorrência por ID.
func (r *IncidentRepo) GetByID(id string) (*entity.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	var i entity.Incident
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.ProductID, &i.IncidentType, &i.Severity, &i.Quantity, &i.Description,
		&i.Resolution, &i.Status, &i.ReportedBy, &i.ResolvedBy, &i.ResolvedAt,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return &i, nil
}

// Update atualiza status, resolução e carimbos da ocorrência.
func (r *IncidentRepo) Update(incident *entity.Incident) error {
	query := `
		UPDATE incidents SET status = $2, resolution = $3, resolved_by = $4, resolved_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		incident.ID, incident.Status, incident.Resolution, incident.ResolvedBy,
		incident.ResolvedAt, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}
	return nil
}

// List lista ocorrências com nome/SKU do produto, mais recentes primeiro.
func (r *IncidentRepo) List(limit, offset int) ([]*entity.Incident, error) {
	query := `
		SELECT i.id, i.product_id, i.incident_type, i.severity, i.quantity, i.description,
		       i.resolution, i.status, i.reported_by, i.resolved_by, i.resolved_at,
		       i.created_at, i.updated_at, p.name, p.sku
		FROM incidents i
		JOIN products p ON p.id = i.product_id
		ORDER BY i.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Incident
	for rows.Next() {
		var i entity.Incident
		if err := rows.Scan(&i.ID, &i.ProductID, &i.IncidentType, &i.Severity, &i.Quantity,
			&i.Description, &i.Resolution, &i.Status, &i.ReportedBy, &i.ResolvedBy,
			&i.ResolvedAt, &i.CreatedAt, &i.UpdatedAt, &i.ProductName, &i.ProductSKU); err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
