package entities

import (
	"strings"
	"time"
)

// Empreendedor representa um negócio cadastrado no diretório.
// Campos opcionais são ponteiros: nil significa ausente no banco,
// nunca um valor indeterminado.
type Empreendedor struct {
	ID                uint
	Nome              string
	Descricao         *string
	Categoria         Categoria
	Endereco          *string
	Lat               float64
	Lng               float64
	HoraInicio        string
	HoraFim           string
	HoraTardeInicio   *string
	HoraTardeFim      *string
	DiasFuncionamento string
	TipoLoja          string
	Telefone          *string
	Email             *string
	Instagram         *string
	Imagem            string
	CreatedAt         time.Time
}

// CadastroValidado reúne os campos de um cadastro depois que todas as
// validações passaram e os campos de múltipla escolha foram normalizados.
// Strings vazias indicam campos opcionais não preenchidos.
type CadastroValidado struct {
	Nome              string
	Descricao         string
	Categoria         Categoria
	Endereco          string
	Lat               float64
	Lng               float64
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

// NovoEmpreendedor monta a entidade canônica a partir de um cadastro
// validado mais a referência da imagem já armazenada. Campos de texto
// livre são aparados e opcionais vazios viram nil.
func NovoEmpreendedor(c CadastroValidado, imagem string) *Empreendedor {
	return &Empreendedor{
		Nome:              strings.TrimSpace(c.Nome),
		Descricao:         opcional(c.Descricao),
		Categoria:         c.Categoria,
		Endereco:          opcional(strings.TrimSpace(c.Endereco)),
		Lat:               c.Lat,
		Lng:               c.Lng,
		HoraInicio:        c.HoraInicio,
		HoraFim:           c.HoraFim,
		HoraTardeInicio:   opcional(c.HoraTardeInicio),
		HoraTardeFim:      opcional(c.HoraTardeFim),
		DiasFuncionamento: c.DiasFuncionamento,
		TipoLoja:          c.TipoLoja,
		Telefone:          opcional(c.Telefone),
		Email:             opcional(c.Email),
		Instagram:         opcional(c.Instagram),
		Imagem:            imagem,
	}
}

// opcional converte string vazia em nil
func opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
