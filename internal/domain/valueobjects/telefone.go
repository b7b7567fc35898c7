package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
)

// telefonePattern aceita o formato BR simples: DDD opcional (com ou sem
// parênteses), 4-5 dígitos, hífen opcional e mais 4 dígitos.
// Ex: (11) 99999-9999, 11 9999-9999, 99999999
var telefonePattern = regexp.MustCompile(`^(\(?\d{2}\)?\s?)?\d{4,5}-?\d{4}$`)

// Telefone é um value object para telefones de contato brasileiros
type Telefone struct {
	value string
}

// NewTelefone cria um novo Telefone validado
func NewTelefone(telefone string) (Telefone, error) {
	telefone = strings.TrimSpace(telefone)

	if !telefonePattern.MatchString(telefone) {
		return Telefone{}, domainerrors.ErrTelefoneInvalido
	}

	return Telefone{value: telefone}, nil
}

// String retorna o valor do telefone
func (t Telefone) String() string {
	return t.value
}
