package entity

import "time"

// Invitation é um convite de cadastro emitido por um administrador.
// Substitui os antigos códigos literais compartilhados: cada convite tem
// código próprio, expira e só pode ser usado uma vez.
type Invitation struct {
	ID        string
	Code      string
	Role      string // papel concedido no cadastro
	CreatedBy string
	ExpiresAt time.Time
	UsedAt    *time.Time
	UsedBy    string
	CreatedAt time.Time
}

// Usable informa se o convite ainda pode ser consumido no instante now.
func (i *Invitation) Usable(now time.Time) bool {
	return i.UsedAt == nil && now.Before(i.ExpiresAt)
}
