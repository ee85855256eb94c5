package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
	"github.com/ddik-sports/ddik-api/internal/domain/repository"
	"github.com/ddik-sports/ddik-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// InviteConfig parâmetros de emissão de convites.
type InviteConfig struct {
	DefaultExpirationDays int
}

// AuthUseCase casos de uso de autenticação: cadastro, login, perfil e
// convites. Cadastro sem convite cria conta de cliente; papéis internos
// exigem convite válido emitido por um administrador.
type AuthUseCase struct {
	txRunner   RegistrationTxRunner
	userRepo   repository.UserRepository
	inviteRepo repository.InvitationRepository
	jwtCfg     JWTConfig
	inviteCfg  InviteConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(txRunner RegistrationTxRunner, userRepo repository.UserRepository, inviteRepo repository.InvitationRepository, jwtCfg JWTConfig, inviteCfg InviteConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, inviteRepo: inviteRepo, jwtCfg: jwtCfg, inviteCfg: inviteCfg}
}

// Register cria um usuário: hasheia a senha com bcrypt, resolve o papel pelo
// convite (vazio = cliente) e persiste. Consumo do convite e criação do
// usuário rodam na mesma transação, com o consumo primeiro: se dois
// cadastros disputarem o mesmo convite, o perdedor não deixa usuário para
// trás. Devolve ErrEmailAlreadyExists se o email já existe e ErrInvite* se o
// convite for inválido, expirado ou usado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	role := entity.RoleCliente
	var invitation *entity.Invitation
	if in.InviteCode != "" {
		invitation, err = uc.inviteRepo.GetByCode(in.InviteCode)
		if err != nil {
			return nil, err
		}
		if invitation == nil {
			return nil, domain.ErrInviteInvalid
		}
		if invitation.UsedAt != nil {
			return nil, domain.ErrInviteUsed
		}
		if !invitation.Usable(now) {
			return nil, domain.ErrInviteExpired
		}
		role = invitation.Role
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunRegistration(ctx, func(
		userRepo repository.UserRepository,
		inviteRepo repository.InvitationRepository,
	) error {
		if invitation != nil {
			invitation.UsedAt = &now
			invitation.UsedBy = user.ID
			// O guard used_at IS NULL do MarkUsed decide a disputa entre
			// dois cadastros; perder aqui aborta antes do insert do usuário.
			if err := inviteRepo.MarkUsed(invitation); err != nil {
				return err
			}
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/senha, gera JWT e retorna token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetProfile devolve o perfil do usuário autenticado.
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile atualiza campos do próprio perfil (nome e avatar).
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.DisplayName != nil {
		user.DisplayName = *in.DisplayName
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// CreateInvitation emite um convite de cadastro para o papel dado.
// Só papéis internos podem ser convidados; cliente cadastra sem convite.
func (uc *AuthUseCase) CreateInvitation(actorID string, in dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if !entity.ValidRole(in.Role) || in.Role == entity.RoleCliente {
		return nil, domain.ErrInvalidInput
	}
	days := in.ExpirationDays
	if days <= 0 {
		days = uc.inviteCfg.DefaultExpirationDays
	}
	code, err := generateInviteCode()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	invitation := &entity.Invitation{
		ID:        uuid.New().String(),
		Code:      code,
		Role:      in.Role,
		CreatedBy: actorID,
		ExpiresAt: now.AddDate(0, 0, days),
		CreatedAt: now,
	}
	if err := uc.inviteRepo.Create(invitation); err != nil {
		return nil, err
	}
	return toInvitationResponse(invitation), nil
}

// ListInvitations lista os convites emitidos, mais recentes primeiro.
func (uc *AuthUseCase) ListInvitations(limit, offset int) ([]dto.InvitationResponse, error) {
	list, err := uc.inviteRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvitationResponse(inv))
	}
	return items, nil
}

// generateInviteCode gera um código aleatório de 16 hex chars.
func generateInviteCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toInvitationResponse(i *entity.Invitation) *dto.InvitationResponse {
	if i == nil {
		return nil
	}
	return &dto.InvitationResponse{
		ID:        i.ID,
		Code:      i.Code,
		Role:      i.Role,
		ExpiresAt: i.ExpiresAt,
		UsedAt:    i.UsedAt,
		UsedBy:    i.UsedBy,
		CreatedAt: i.CreatedAt,
	}
}
