package repository

import "github.com/ddik-sports/ddik-api/internal/domain/entity"

// NotificationRepository define o porto de persistência para Notification (DIP).
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string) error
}
