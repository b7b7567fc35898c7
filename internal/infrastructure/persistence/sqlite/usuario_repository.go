package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
	"github.com/rafabene/empreendelocal-backend/internal/domain/repositories"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UsuarioRepository) FindByResetToken(ctx context.Context, token string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where("reset_token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := r.getDB(ctx)
	return db.WithContext(ctx).Save(model).Error
}

func (r *UsuarioRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *UsuarioRepository) toModel(u *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		ID:           u.ID,
		Email:        u.Email,
		Senha:        u.SenhaHash,
		ResetToken:   u.ResetToken,
		ResetExpires: u.ResetExpires,
	}
}

func (r *UsuarioRepository) toEntity(model *UsuarioModel) *entities.Usuario {
	return &entities.Usuario{
		ID:           model.ID,
		Email:        model.Email,
		SenhaHash:    model.Senha,
		ResetToken:   model.ResetToken,
		ResetExpires: model.ResetExpires,
	}
}
