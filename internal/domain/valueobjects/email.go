package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
)

// emailPattern aceita qualquer local@dominio.tld sem espaços e com um único @
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email é um value object que garante que emails de contato sejam sempre válidos
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(email)

	if !emailPattern.MatchString(email) {
		return Email{}, domainerrors.ErrEmailInvalido
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}
