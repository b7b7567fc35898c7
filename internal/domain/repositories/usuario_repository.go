package repositories

import (
	"context"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de contas
// usadas na recuperação de senha
type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	FindByResetToken(ctx context.Context, token string) (*entities.Usuario, error)
	Update(ctx context.Context, usuario *entities.Usuario) error
}
