package services

import (
	"context"

	"github.com/rafabene/empreendelocal-backend/internal/domain"
	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
	"github.com/rafabene/empreendelocal-backend/internal/domain/ports"
	"github.com/rafabene/empreendelocal-backend/internal/domain/repositories"
	"github.com/rafabene/empreendelocal-backend/internal/domain/validation"
)

// EmpreendedorService contém a lógica de negócio dos cadastros:
// validação na ordem fixa, normalização dos campos de múltipla escolha,
// guarda da imagem e montagem do registro canônico
type EmpreendedorService struct {
	repo    repositories.EmpreendedorRepository
	storage ports.FileStorage
	uow     domain.UnitOfWork
	logger  ports.Logger
	regras  validation.RegrasImagem
}

// NewEmpreendedorService cria um novo EmpreendedorService
func NewEmpreendedorService(
	repo repositories.EmpreendedorRepository,
	storage ports.FileStorage,
	uow domain.UnitOfWork,
	logger ports.Logger,
	regras validation.RegrasImagem,
) *EmpreendedorService {
	return &EmpreendedorService{
		repo:    repo,
		storage: storage,
		uow:     uow,
		logger:  logger,
		regras:  regras,
	}
}

// Cadastrar valida uma submissão e, se aceita, grava a imagem e insere o
// registro canônico. A validação é fail-fast: o primeiro motivo de
// rejeição é devolvido e nada é gravado, nem imagem nem registro.
func (s *EmpreendedorService) Cadastrar(ctx context.Context, campos validation.Cadastro, imagem *ports.ArquivoEnviado) (*entities.Empreendedor, error) {
	var meta *validation.Imagem
	if imagem != nil {
		meta = &validation.Imagem{
			NomeOriginal: imagem.NomeOriginal,
			ContentType:  imagem.ContentType,
			Tamanho:      imagem.Tamanho,
		}
	}

	coords, err := validation.ValidarCadastro(campos, meta, s.regras)
	if err != nil {
		return nil, err
	}

	dias := validation.NormalizarCampoArray(campos.DiasFuncionamento)
	if err := validation.ValidarSelecao(dias, domainerrors.ErrNenhumDiaSelecionado); err != nil {
		return nil, err
	}

	tipos := validation.NormalizarCampoArray(campos.TipoLoja)
	if err := validation.ValidarSelecao(tipos, domainerrors.ErrNenhumTipoSelecionado); err != nil {
		return nil, err
	}

	nomeImagem, err := s.storage.Salvar(ctx, imagem)
	if err != nil {
		return nil, err
	}

	empreendedor := entities.NovoEmpreendedor(entities.CadastroValidado{
		Nome:              campos.Nome,
		Descricao:         campos.Descricao,
		Categoria:         entities.Categoria(campos.Categoria),
		Endereco:          campos.Endereco,
		Lat:               coords.Lat,
		Lng:               coords.Lng,
		HoraInicio:        campos.HoraInicio,
		HoraFim:           campos.HoraFim,
		HoraTardeInicio:   campos.HoraTardeInicio,
		HoraTardeFim:      campos.HoraTardeFim,
		DiasFuncionamento: dias,
		TipoLoja:          tipos,
		Telefone:          campos.Telefone,
		Email:             campos.Email,
		Instagram:         campos.Instagram,
	}, nomeImagem)

	if err := s.repo.Create(ctx, empreendedor); err != nil {
		// Registro não entrou; não deixar a imagem órfã no disco
		if rerr := s.storage.Remover(ctx, nomeImagem); rerr != nil {
			s.logger.Warn("failed to remove orphan image", "name", nomeImagem, "error", rerr)
		}
		return nil, err
	}

	s.logger.Info("cadastro realizado", "id", empreendedor.ID, "nome", empreendedor.Nome)
	return empreendedor, nil
}

// Buscar retorna um cadastro pelo ID
func (s *EmpreendedorService) Buscar(ctx context.Context, id uint) (*entities.Empreendedor, error) {
	empreendedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empreendedor == nil {
		return nil, domainerrors.ErrEmpreendedorNaoEncontrado
	}
	return empreendedor, nil
}

// Listar retorna todos os cadastros, mais recentes primeiro
func (s *EmpreendedorService) Listar(ctx context.Context) ([]*entities.Empreendedor, error) {
	return s.repo.List(ctx)
}

// Deletar remove o cadastro e em seguida libera a imagem associada
func (s *EmpreendedorService) Deletar(ctx context.Context, id uint) error {
	var imagem string

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		empreendedor, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if empreendedor == nil {
			return domainerrors.ErrEmpreendedorNaoEncontrado
		}

		imagem = empreendedor.Imagem
		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	if imagem != "" {
		if rerr := s.storage.Remover(ctx, imagem); rerr != nil {
			s.logger.Warn("failed to remove image of deleted record", "id", id, "error", rerr)
		}
	}

	s.logger.Info("empreendedor deletado", "id", id)
	return nil
}
