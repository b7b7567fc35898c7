package valueobjects

import (
	"strconv"
	"strings"

	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
)

// Horario é um value object para um horário do dia no formato HH:MM,
// comparável em minutos desde a meia-noite
type Horario struct {
	texto   string
	minutos int
}

// NewHorario cria um novo Horario validado a partir de "HH:MM"
func NewHorario(s string) (Horario, error) {
	s = strings.TrimSpace(s)

	horas, mins, ok := strings.Cut(s, ":")
	if !ok {
		return Horario{}, domainerrors.ErrHorarioMalFormado
	}

	h, err := strconv.Atoi(horas)
	if err != nil || h < 0 || h > 23 {
		return Horario{}, domainerrors.ErrHorarioMalFormado
	}

	m, err := strconv.Atoi(mins)
	if err != nil || m < 0 || m > 59 {
		return Horario{}, domainerrors.ErrHorarioMalFormado
	}

	return Horario{texto: s, minutos: h*60 + m}, nil
}

// Minutos retorna o horário em minutos desde a meia-noite
func (h Horario) Minutos() int {
	return h.minutos
}

// Antes verifica se o horário é estritamente anterior a outro
func (h Horario) Antes(outro Horario) bool {
	return h.minutos < outro.minutos
}

// String retorna o horário no formato original HH:MM
func (h Horario) String() string {
	return h.texto
}
