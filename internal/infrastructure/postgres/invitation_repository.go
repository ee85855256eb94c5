package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

const invitationColumns = `id, code, role, created_by, expires_at, used_at, used_by, created_at`

// InvitationRepo implementação do porto InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	q Querier
}

// NewInvitationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInvitationRepository(q Querier) *InvitationRepo {
	return &InvitationRepo{q: q}
}

func scanInvitation(row pgx.Row) (*entity.Invitation, error) {
	var i entity.Invitation
	err := row.Scan(
		&i.ID, &i.Code, &i.Role, &i.CreatedBy, &i.ExpiresAt, &i.UsedAt, &i.UsedBy, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste um convite.
func (r *InvitationRepo) Create(invitation *entity.Invitation) error {
	query := `
		INSERT INTO invitations (` + invitationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		invitation.ID, invitation.Code, invitation.Role, invitation.CreatedBy,
		invitation.ExpiresAt, invitation.UsedAt, invitation.UsedBy, invitation.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// GetByCode obtém um convite pelo código.
func (r *InvitationRepo) GetByCode(code string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE code = $1`
	i, err := scanInvitation(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return i, nil
}

// MarkUsed marca o convite como consumido. O predicado used_at IS NULL
// garante o uso único mesmo com cadastros concorrentes.
func (r *InvitationRepo) MarkUsed(invitation *entity.Invitation) error {
	query := `UPDATE invitations SET used_at = $2, used_by = $3 WHERE id = $1 AND used_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		invitation.ID, invitation.UsedAt, invitation.UsedBy,
	)
	if err != nil {
		return fmt.Errorf("mark invitation used: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInviteUsed
	}
	return nil
}

// List lista convites emitidos, mais recentes primeiro.
func (r *InvitationRepo) List(limit, offset int) ([]*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invitation
	for rows.Next() {
		i, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}
