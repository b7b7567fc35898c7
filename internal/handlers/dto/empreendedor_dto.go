package dto

import (
	"time"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
)

// EmpreendedorResponse representa um cadastro na API.
// Os nomes dos campos seguem o contrato que o frontend do mapa consome.
type EmpreendedorResponse struct {
	ID                uint      `json:"id"`
	Nome              string    `json:"nome"`
	Descricao         *string   `json:"descricao"`
	Categoria         string    `json:"categoria"`
	Endereco          *string   `json:"endereco"`
	Lat               float64   `json:"lat"`
	Lng               float64   `json:"lng"`
	HoraInicio        string    `json:"horaInicio"`
	HoraFim           string    `json:"horaFim"`
	HoraTardeInicio   *string   `json:"horaTardeInicio"`
	HoraTardeFim      *string   `json:"horaTardeFim"`
	DiasFuncionamento string    `json:"diasFuncionamento"`
	TipoLoja          string    `json:"tipoLoja"`
	Telefone          *string   `json:"telefone"`
	Email             *string   `json:"email"`
	Instagram         *string   `json:"instagram"`
	Imagem            string    `json:"imagem"`
	CreatedAt         time.Time `json:"created_at"`
}

// CadastroCriadoResponse é a resposta do POST de cadastro
type CadastroCriadoResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// ToEmpreendedorResponse converte uma entidade Empreendedor para EmpreendedorResponse
func ToEmpreendedorResponse(e *entities.Empreendedor) EmpreendedorResponse {
	return EmpreendedorResponse{
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

// ToEmpreendedorResponses converte uma lista de entidades para a resposta da API
func ToEmpreendedorResponses(empreendedores []*entities.Empreendedor) []EmpreendedorResponse {
	responses := make([]EmpreendedorResponse, len(empreendedores))
	for i, e := range empreendedores {
		responses[i] = ToEmpreendedorResponse(e)
	}
	return responses
}
