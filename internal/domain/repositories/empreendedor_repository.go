package repositories

import (
	"context"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
)

// EmpreendedorRepository define a interface para persistência dos cadastros
type EmpreendedorRepository interface {
	Create(ctx context.Context, empreendedor *entities.Empreendedor) error
	FindByID(ctx context.Context, id uint) (*entities.Empreendedor, error)
	List(ctx context.Context) ([]*entities.Empreendedor, error)
	Delete(ctx context.Context, id uint) error
}
