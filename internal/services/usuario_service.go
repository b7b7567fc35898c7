package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/empreendelocal-backend/internal/domain"
	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
	"github.com/rafabene/empreendelocal-backend/internal/domain/ports"
	"github.com/rafabene/empreendelocal-backend/internal/domain/repositories"
)

// validadeToken é o tempo de vida de um token de recuperação de senha
const validadeToken = 10 * time.Minute

// UsuarioService contém a lógica de recuperação de senha
type UsuarioService struct {
	repo   repositories.UsuarioRepository
	uow    domain.UnitOfWork
	logger ports.Logger
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	repo repositories.UsuarioRepository,
	uow domain.UnitOfWork,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		repo:   repo,
		uow:    uow,
		logger: logger,
	}
}

// RecuperarSenha gera um token de recuperação para o email informado.
// O envio do email fica fora daqui: o token é logado e cabe ao chamador
// decidir se o expõe na resposta (apenas em desenvolvimento).
func (s *UsuarioService) RecuperarSenha(ctx context.Context, email string) (string, error) {
	token, err := gerarToken()
	if err != nil {
		return "", err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		usuario, err := s.repo.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}
		if usuario == nil {
			return domainerrors.ErrEmailNaoEncontrado
		}

		usuario.DefinirResetToken(token, time.Now().Add(validadeToken))
		return s.repo.Update(txCtx, usuario)
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("token de recuperação gerado", "email", email)
	return token, nil
}

// AtualizarSenha troca a senha a partir de um token válido e não
// expirado, e invalida o token em seguida
func (s *UsuarioService) AtualizarSenha(ctx context.Context, token, novaSenha string) error {
	usuario, err := s.repo.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domainerrors.ErrTokenInvalido
	}

	if usuario.TokenExpirado(time.Now()) {
		return domainerrors.ErrTokenExpirado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usuario.SenhaHash = string(hash)
	usuario.LimparResetToken()

	if err := s.repo.Update(ctx, usuario); err != nil {
		return err
	}

	s.logger.Info("senha atualizada", "usuario", usuario.ID)
	return nil
}

// gerarToken produz 32 bytes aleatórios em hex
func gerarToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
