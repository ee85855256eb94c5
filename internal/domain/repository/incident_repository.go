package repository

import "github.com/ddik-sports/ddik-api/internal/domain/entity"

// IncidentRepository define o porto de persistência para Incident (DIP).
type IncidentRepository interface {
	Create(incident *entity.Incident) error
	GetByID(id string) (*entity.Incident, error)
	Update(incident *entity.Incident) error
	List(limit, offset int) ([]*entity.Incident, error)
}
