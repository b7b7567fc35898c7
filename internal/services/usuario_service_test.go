package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entities.Usuario // por email
}

func newFakeUsuarioRepo(usuarios ...*entities.Usuario) *fakeUsuarioRepo {
	repo := &fakeUsuarioRepo{usuarios: make(map[string]*entities.Usuario)}
	for _, u := range usuarios {
		repo.usuarios[u.Email] = u
	}
	return repo
}

func (f *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*entities.Usuario, error) {
	return f.usuarios[email], nil
}

func (f *fakeUsuarioRepo) FindByResetToken(_ context.Context, token string) (*entities.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, usuario *entities.Usuario) error {
	f.usuarios[usuario.Email] = usuario
	return nil
}

func TestUsuarioService_RecuperarSenha(t *testing.T) {
	ctx := context.Background()

	t.Run("email desconhecido retorna não encontrado", func(t *testing.T) {
		service := NewUsuarioService(newFakeUsuarioRepo(), stubUnitOfWork{}, stubLogger{})

		_, err := service.RecuperarSenha(ctx, "ninguem@exemplo.com")
		if !errors.Is(err, domainerrors.ErrEmailNaoEncontrado) {
			t.Errorf("esperava ErrEmailNaoEncontrado, obteve %v", err)
		}
	})

	t.Run("gera token hex de 64 caracteres com validade", func(t *testing.T) {
		usuario := &entities.Usuario{ID: 1, Email: "ze@padaria.com"}
		repo := newFakeUsuarioRepo(usuario)
		service := NewUsuarioService(repo, stubUnitOfWork{}, stubLogger{})

		token, err := service.RecuperarSenha(ctx, "ze@padaria.com")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}
		if len(token) != 64 {
			t.Errorf("esperava token de 64 caracteres, obteve %d", len(token))
		}
		if usuario.ResetToken == nil || *usuario.ResetToken != token {
			t.Error("token não foi persistido no usuário")
		}
		if usuario.ResetExpires == nil || !usuario.ResetExpires.After(time.Now()) {
			t.Error("validade do token deveria estar no futuro")
		}
	})
}

func TestUsuarioService_AtualizarSenha(t *testing.T) {
	ctx := context.Background()

	t.Run("token desconhecido é inválido", func(t *testing.T) {
		service := NewUsuarioService(newFakeUsuarioRepo(), stubUnitOfWork{}, stubLogger{})

		err := service.AtualizarSenha(ctx, "deadbeef", "novaSenha123")
		if !errors.Is(err, domainerrors.ErrTokenInvalido) {
			t.Errorf("esperava ErrTokenInvalido, obteve %v", err)
		}
	})

	t.Run("token vencido é rejeitado", func(t *testing.T) {
		usuario := &entities.Usuario{ID: 1, Email: "ze@padaria.com"}
		usuario.DefinirResetToken("token-vencido", time.Now().Add(-time.Minute))
		service := NewUsuarioService(newFakeUsuarioRepo(usuario), stubUnitOfWork{}, stubLogger{})

		err := service.AtualizarSenha(ctx, "token-vencido", "novaSenha123")
		if !errors.Is(err, domainerrors.ErrTokenExpirado) {
			t.Errorf("esperava ErrTokenExpirado, obteve %v", err)
		}
	})

	t.Run("troca a senha com hash e invalida o token", func(t *testing.T) {
		usuario := &entities.Usuario{ID: 1, Email: "ze@padaria.com"}
		usuario.DefinirResetToken("token-valido", time.Now().Add(5*time.Minute))
		service := NewUsuarioService(newFakeUsuarioRepo(usuario), stubUnitOfWork{}, stubLogger{})

		if err := service.AtualizarSenha(ctx, "token-valido", "novaSenha123"); err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte("novaSenha123")); err != nil {
			t.Error("hash da senha não confere")
		}
		if usuario.ResetToken != nil || usuario.ResetExpires != nil {
			t.Error("token deveria ter sido invalidado")
		}
	})
}
