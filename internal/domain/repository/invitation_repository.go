package repository

import "github.com/ddik-sports/ddik-api/internal/domain/entity"

// InvitationRepository define o porto de persistência para Invitation (DIP).
type InvitationRepository interface {
	Create(invitation *entity.Invitation) error
	GetByCode(code string) (*entity.Invitation, error)
	MarkUsed(invitation *entity.Invitation) error
	List(limit, offset int) ([]*entity.Invitation, error)
}
