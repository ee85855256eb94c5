package entity

import "time"

// Papéis válidos para User. Role é o único sinal de autorização do sistema.
const (
	RoleAdmin       = "admin"
	RoleGerente     = "gerente"
	RoleFuncionario = "funcionario"
	RoleCliente     = "cliente"
)

// ValidRole informa se o papel é um dos aceitos.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleGerente, RoleFuncionario, RoleCliente:
		return true
	}
	return false
}

// User representa um usuário do sistema com seu perfil e papel.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca em claro após persistir
	DisplayName  string
	AvatarURL    string
	Role         string // admin, gerente, funcionario, cliente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
