package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
	"github.com/rafabene/empreendelocal-backend/internal/domain/repositories"
)

// EmpreendedorRepository implementa repositories.EmpreendedorRepository
type EmpreendedorRepository struct {
	db *gorm.DB
}

// NewEmpreendedorRepository cria um novo EmpreendedorRepository
func NewEmpreendedorRepository(db *gorm.DB) repositories.EmpreendedorRepository {
	return &EmpreendedorRepository{db: db}
}

func (r *EmpreendedorRepository) Create(ctx context.Context, empreendedor *entities.Empreendedor) error {
	model := r.toModel(empreendedor)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	empreendedor.ID = model.ID
	empreendedor.CreatedAt = model.CreatedAt
	return nil
}

func (r *EmpreendedorRepository) FindByID(ctx context.Context, id uint) (*entities.Empreendedor, error) {
	var model EmpreendedorModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *EmpreendedorRepository) List(ctx context.Context) ([]*entities.Empreendedor, error) {
	var models []*EmpreendedorModel

	db := r.getDB(ctx)
	// Mais recentes primeiro, como a listagem do mapa espera
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Empreendedor, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result, nil
}

func (r *EmpreendedorRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	return db.WithContext(ctx).Where("id = ?", id).Delete(&EmpreendedorModel{}).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *EmpreendedorRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *EmpreendedorRepository) toModel(e *entities.Empreendedor) *EmpreendedorModel {
	return &EmpreendedorModel{
		ID:                e.ID,
		Nome:              e.Nome,
		Descricao:         e.Descricao,
		Categoria:         string(e.Categoria),
		Endereco:          e.Endereco,
		Lat:               e.Lat,
		Lng:               e.Lng,
		HoraInicio:        e.HoraInicio,
		HoraFim:           e.HoraFim,
		HoraTardeInicio:   e.HoraTardeInicio,
		HoraTardeFim:      e.HoraTardeFim,
		DiasFuncionamento: e.DiasFuncionamento,
		TipoLoja:          e.TipoLoja,
		Telefone:          e.Telefone,
		Email:             e.Email,
		Instagram:         e.Instagram,
		Imagem:            e.Imagem,
		CreatedAt:         e.CreatedAt,
	}
}

func (r *EmpreendedorRepository) toEntity(model *EmpreendedorModel) *entities.Empreendedor {
	return &entities.Empreendedor{
		ID:                model.ID,
		Nome:              model.Nome,
		Descricao:         model.Descricao,
		Categoria:         entities.Categoria(model.Categoria),
		Endereco:          model.Endereco,
		Lat:               model.Lat,
		Lng:               model.Lng,
		HoraInicio:        model.HoraInicio,
		HoraFim:           model.HoraFim,
		HoraTardeInicio:   model.HoraTardeInicio,
		HoraTardeFim:      model.HoraTardeFim,
		DiasFuncionamento: model.DiasFuncionamento,
		TipoLoja:          model.TipoLoja,
		Telefone:          model.Telefone,
		Email:             model.Email,
		Instagram:         model.Instagram,
		Imagem:            model.Imagem,
		CreatedAt:         model.CreatedAt,
	}
}
