package usecase

import (
	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// NotificationUseCase leitura e marcação de notificações. A criação é feita
// pelo Ledger (estoque baixo) dentro da própria transação de movimentação.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase constrói o caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List lista notificações do usuário (diretas e broadcasts), mais recentes
// primeiro.
func (uc *NotificationUseCase) List(userID string, onlyUnread bool, limit, offset int) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByUser(userID, onlyUnread, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:                n.ID,
			Type:              n.Type,
			Title:             n.Title,
			Message:           n.Message,
			RelatedEntityType: n.RelatedEntityType,
			RelatedEntityID:   n.RelatedEntityID,
			IsRead:            n.IsRead,
			CreatedAt:         n.CreatedAt,
		})
	}
	return items, nil
}

// MarkRead marca uma notificação como lida para o usuário.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.MarkRead(id, userID)
}
