// Package validation contém as regras puras de validação e normalização
// de um cadastro de empreendedor. As funções não tocam estado compartilhado:
// recebem os campos brutos do formulário e devolvem um veredito.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
	"github.com/rafabene/empreendelocal-backend/internal/domain/valueobjects"
)

// Cadastro representa os campos brutos recebidos no formulário,
// exatamente como o cliente os enviou
type Cadastro struct {
	Nome              string
	Descricao         string
	Categoria         string
	Endereco          string
	Lat               string
	Lng               string
	HoraInicio        string
	HoraFim           string
	HoraTardeInicio   string
	HoraTardeFim      string
	DiasFuncionamento string
	TipoLoja          string
	Telefone          string
	Email             string
	Instagram         string
}

// Imagem descreve o arquivo anexado ao cadastro, sem o conteúdo
type Imagem struct {
	NomeOriginal string
	ContentType  string
	Tamanho      int64
}

// RegrasImagem parametriza a aceitação de imagens (espelha o
// colaborador de upload, para rejeitar antes de gravar qualquer byte)
type RegrasImagem struct {
	TiposAceitos  []string
	TamanhoMaximo int64
}

// Coordenadas guarda a latitude e longitude já interpretadas
type Coordenadas struct {
	Lat float64
	Lng float64
}

// ValidarNome rejeita nomes com menos de 3 caracteres após aparar espaços
func ValidarNome(nome string) error {
	if len([]rune(strings.TrimSpace(nome))) < 3 {
		return domainerrors.ErrNomeMuitoCurto
	}
	return nil
}

// ValidarCategoria rejeita categorias fora do conjunto fixo
func ValidarCategoria(categoria string) error {
	if !entities.Categoria(categoria).IsValid() {
		return domainerrors.ErrCategoriaInvalida
	}
	return nil
}

// ValidarCoordenadas interpreta lat/lng como ponto flutuante e verifica
// os limites geográficos: lat em [-90, 90] e lng em [-180, 180]
func ValidarCoordenadas(lat, lng string) (Coordenadas, error) {
	latNum, errLat := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	lngNum, errLng := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if errLat != nil || errLng != nil {
		return Coordenadas{}, domainerrors.ErrCoordenadasNaoNumericas
	}

	// ParseFloat aceita "NaN", que escaparia das comparações de limite
	if math.IsNaN(latNum) || math.IsNaN(lngNum) {
		return Coordenadas{}, domainerrors.ErrCoordenadasNaoNumericas
	}

	if latNum < -90 || latNum > 90 || lngNum < -180 || lngNum > 180 {
		return Coordenadas{}, domainerrors.ErrCoordenadasForaDoAlcance
	}

	return Coordenadas{Lat: latNum, Lng: lngNum}, nil
}

// ValidarHorarioObrigatorio exige o par manhã completo e em ordem:
// o fechamento deve ser estritamente depois da abertura
func ValidarHorarioObrigatorio(inicio, fim string) error {
	if inicio == "" || fim == "" {
		return domainerrors.ErrHorarioObrigatorio
	}
	return validarOrdemHorarios(inicio, fim)
}

// ValidarHorarioOpcional aceita o par tarde ausente; se apenas um dos
// dois vier preenchido rejeita, e se ambos vierem aplica a mesma
// verificação de ordem do horário obrigatório
func ValidarHorarioOpcional(inicio, fim string) error {
	if inicio == "" && fim == "" {
		return nil
	}
	if inicio == "" || fim == "" {
		return domainerrors.ErrHorarioTardeIncompleto
	}
	return validarOrdemHorarios(inicio, fim)
}

func validarOrdemHorarios(inicio, fim string) error {
	abre, err := valueobjects.NewHorario(inicio)
	if err != nil {
		return err
	}
	fecha, err := valueobjects.NewHorario(fim)
	if err != nil {
		return err
	}
	if !abre.Antes(fecha) {
		return domainerrors.ErrHorarioInvertido
	}
	return nil
}

// ValidarImagem exige o anexo e confere o tipo declarado e o tamanho
// contra as regras do colaborador de upload
func ValidarImagem(img *Imagem, regras RegrasImagem) error {
	if img == nil {
		return domainerrors.ErrImagemObrigatoria
	}

	aceito := false
	for _, tipo := range regras.TiposAceitos {
		if img.ContentType == tipo {
			aceito = true
			break
		}
	}
	if !aceito {
		return domainerrors.ErrFormatoImagemNaoSuportado
	}

	if regras.TamanhoMaximo > 0 && img.Tamanho > regras.TamanhoMaximo {
		return domainerrors.ErrImagemMuitoGrande
	}

	return nil
}

// ValidarEmail aceita o campo vazio; se preenchido, valida o formato
func ValidarEmail(email string) error {
	if email == "" {
		return nil
	}
	_, err := valueobjects.NewEmail(email)
	return err
}

// ValidarTelefone aceita o campo vazio; se preenchido, valida o formato BR
func ValidarTelefone(telefone string) error {
	if telefone == "" {
		return nil
	}
	_, err := valueobjects.NewTelefone(telefone)
	return err
}

// ValidarCadastro aplica os validadores na ordem fixa do formulário e
// devolve o primeiro erro encontrado; os demais validadores não rodam.
// Ordem: nome, categoria, coordenadas, horário da manhã, horário da
// tarde, imagem, email, telefone.
func ValidarCadastro(c Cadastro, img *Imagem, regras RegrasImagem) (Coordenadas, error) {
	if err := ValidarNome(c.Nome); err != nil {
		return Coordenadas{}, err
	}

	if err := ValidarCategoria(c.Categoria); err != nil {
		return Coordenadas{}, err
	}

	coords, err := ValidarCoordenadas(c.Lat, c.Lng)
	if err != nil {
		return Coordenadas{}, err
	}

	if err := ValidarHorarioObrigatorio(c.HoraInicio, c.HoraFim); err != nil {
		return Coordenadas{}, err
	}

	if err := ValidarHorarioOpcional(c.HoraTardeInicio, c.HoraTardeFim); err != nil {
		return Coordenadas{}, err
	}

	if err := ValidarImagem(img, regras); err != nil {
		return Coordenadas{}, err
	}

	if err := ValidarEmail(c.Email); err != nil {
		return Coordenadas{}, err
	}

	if err := ValidarTelefone(c.Telefone); err != nil {
		return Coordenadas{}, err
	}

	return coords, nil
}
