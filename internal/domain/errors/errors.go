package errors

import "errors"

// Motivos de rejeição de cadastro
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrNomeMuitoCurto            = errors.New("error.nome_muito_curto")
	ErrCategoriaInvalida         = errors.New("error.categoria_invalida")
	ErrCoordenadasNaoNumericas   = errors.New("error.coordenadas_nao_numericas")
	ErrCoordenadasForaDoAlcance  = errors.New("error.coordenadas_fora_do_alcance")
	ErrHorarioObrigatorio        = errors.New("error.horario_obrigatorio")
	ErrHorarioMalFormado         = errors.New("error.horario_mal_formado")
	ErrHorarioInvertido          = errors.New("error.horario_invertido")
	ErrHorarioTardeIncompleto    = errors.New("error.horario_tarde_incompleto")
	ErrImagemObrigatoria         = errors.New("error.imagem_obrigatoria")
	ErrFormatoImagemNaoSuportado = errors.New("error.formato_imagem_nao_suportado")
	ErrImagemMuitoGrande         = errors.New("error.imagem_muito_grande")
	ErrEmailInvalido             = errors.New("error.email_invalido")
	ErrTelefoneInvalido          = errors.New("error.telefone_invalido")
	ErrNenhumDiaSelecionado      = errors.New("error.nenhum_dia_selecionado")
	ErrNenhumTipoSelecionado     = errors.New("error.nenhum_tipo_selecionado")
)

// Business errors
var (
	ErrEmpreendedorNaoEncontrado = errors.New("error.empreendedor_nao_encontrado")
	ErrEmailNaoEncontrado        = errors.New("error.email_nao_encontrado")
	ErrTokenInvalido             = errors.New("error.token_invalido")
	ErrTokenExpirado             = errors.New("error.token_expirado")
)

// errosDeCadastro reúne todos os motivos que resultam em 400 no cadastro
var errosDeCadastro = []error{
	ErrNomeMuitoCurto,
	ErrCategoriaInvalida,
	ErrCoordenadasNaoNumericas,
	ErrCoordenadasForaDoAlcance,
	ErrHorarioObrigatorio,
	ErrHorarioMalFormado,
	ErrHorarioInvertido,
	ErrHorarioTardeIncompleto,
	ErrImagemObrigatoria,
	ErrFormatoImagemNaoSuportado,
	ErrImagemMuitoGrande,
	ErrEmailInvalido,
	ErrTelefoneInvalido,
	ErrNenhumDiaSelecionado,
	ErrNenhumTipoSelecionado,
}

// EhErroDeCadastro verifica se o erro é um motivo de rejeição de cadastro
func EhErroDeCadastro(err error) bool {
	for _, e := range errosDeCadastro {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)
