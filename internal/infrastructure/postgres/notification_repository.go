package postgres

import (
	"context"
	"fmt"

	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementação do porto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste uma notificação.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, related_entity_type, related_entity_id, is_read, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.UserID, notification.Type, notification.Title,
		notification.Message, notification.RelatedEntityType, notification.RelatedEntityID,
		notification.IsRead, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser lista notificações do usuário mais os broadcasts (user_id NULL),
// mais recentes primeiro. Para broadcasts, o lido/não lido é por usuário,
// resolvido via notification_reads.
func (r *NotificationRepo) ListByUser(userID string, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT n.id, COALESCE(n.user_id, ''), n.type, n.title, n.message,
		       n.related_entity_type, n.related_entity_id,
		       (n.is_read OR nr.user_id IS NOT NULL), n.created_at
		FROM notifications n
		LEFT JOIN notification_reads nr ON nr.notification_id = n.id AND nr.user_id = $1
		WHERE (n.user_id = $1 OR n.user_id IS NULL)
		  AND (NOT $2 OR NOT (n.is_read OR nr.user_id IS NOT NULL))
		ORDER BY n.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, userID, onlyUnread, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.RelatedEntityType, &n.RelatedEntityID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca uma notificação como lida para o usuário. Notificações
// pessoais mudam a própria linha; broadcasts ganham um registro por usuário
// em notification_reads, para que a leitura de um não esconda o aviso dos
// demais.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	personal := `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), personal, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	broadcast := `
		INSERT INTO notification_reads (notification_id, user_id, read_at)
		SELECT id, $2, now() FROM notifications WHERE id = $1 AND user_id IS NULL
		ON CONFLICT (notification_id, user_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), broadcast, id, userID); err != nil {
		return fmt.Errorf("mark broadcast read: %w", err)
	}
	return nil
}
