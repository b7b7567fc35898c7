package sqlite

import "time"

// EmpreendedorModel é o model GORM para os cadastros.
// Os nomes de coluna em camelCase vêm do banco original e são mantidos
// para compatibilidade com bancos já existentes.
type EmpreendedorModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Nome              string    `gorm:"column:nome;not null"`
	Descricao         *string   `gorm:"column:descricao"`
	Categoria         string    `gorm:"column:categoria;not null"`
	Endereco          *string   `gorm:"column:endereco"`
	Lat               float64   `gorm:"column:lat;not null"`
	Lng               float64   `gorm:"column:lng;not null"`
	HoraInicio        string    `gorm:"column:horaInicio;not null"`
	HoraFim           string    `gorm:"column:horaFim;not null"`
	HoraTardeInicio   *string   `gorm:"column:horaTardeInicio"`
	HoraTardeFim      *string   `gorm:"column:horaTardeFim"`
	DiasFuncionamento string    `gorm:"column:diasFuncionamento"`
	TipoLoja          string    `gorm:"column:tipoLoja"`
	Telefone          *string   `gorm:"column:telefone"`
	Email             *string   `gorm:"column:email"`
	Instagram         *string   `gorm:"column:instagram"`
	Imagem            string    `gorm:"column:imagem"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (EmpreendedorModel) TableName() string {
	return "empreendedores"
}

// UsuarioModel é o model GORM para as contas de recuperação de senha
type UsuarioModel struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string     `gorm:"column:email;uniqueIndex;not null"`
	Senha        string     `gorm:"column:senha;not null"`
	ResetToken   *string    `gorm:"column:reset_token"`
	ResetExpires *time.Time `gorm:"column:reset_expires"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
