package auth

import (
	"context"

	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// RegistrationTxRunner executa o cadastro em uma transação: o consumo do
// convite e a criação do usuário fazem commit juntos ou nenhum. Sem isso, um
// MarkUsed que falha (convite disputado por dois cadastros) deixaria para
// trás um usuário já persistido com o papel do convite.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		inviteRepo repository.InvitationRepository,
	) error) error
}
