package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/empreendelocal-backend/internal/domain/ports"
)

// ColunaEsquema descreve uma coluna esperada da tabela de cadastros
type ColunaEsquema struct {
	Nome string
	Tipo string
}

// colunasAdicionais lista as colunas que bancos criados por versões
// antigas podem não ter. A migração é apenas aditiva: nunca remove,
// renomeia ou muda o tipo de uma coluna existente.
var colunasAdicionais = []ColunaEsquema{
	{Nome: "horaTardeInicio", Tipo: "TEXT"},
	{Nome: "horaTardeFim", Tipo: "TEXT"},
	{Nome: "created_at", Tipo: "DATETIME DEFAULT CURRENT_TIMESTAMP"},
}

const criarTabelaEmpreendedores = `
CREATE TABLE IF NOT EXISTS empreendedores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nome TEXT NOT NULL,
	descricao TEXT,
	categoria TEXT NOT NULL,
	endereco TEXT,
	lat REAL NOT NULL,
	lng REAL NOT NULL,
	horaInicio TEXT NOT NULL,
	horaFim TEXT NOT NULL,
	horaTardeInicio TEXT,
	horaTardeFim TEXT,
	diasFuncionamento TEXT,
	tipoLoja TEXT,
	telefone TEXT,
	email TEXT,
	instagram TEXT,
	imagem TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const criarTabelaUsuarios = `
CREATE TABLE IF NOT EXISTS usuarios (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT UNIQUE NOT NULL,
	senha TEXT NOT NULL,
	reset_token TEXT,
	reset_expires DATETIME
)`

// MigradorEsquema reconcilia o esquema do banco com o esperado pela
// versão atual do modelo. Roda uma única vez na subida do processo,
// antes de qualquer requisição tocar o banco.
type MigradorEsquema struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewMigradorEsquema cria um novo MigradorEsquema
func NewMigradorEsquema(db *gorm.DB, logger ports.Logger) *MigradorEsquema {
	return &MigradorEsquema{db: db, logger: logger}
}

// Reconciliar cria as tabelas se não existirem e adiciona as colunas
// esperadas que estiverem faltando. Falha ao adicionar uma coluna é
// logada e não aborta: as demais colunas ainda são tentadas e a
// aplicação sobe em estado degradado para a coluna ausente.
// Rodar de novo com o esquema completo é um no-op.
func (m *MigradorEsquema) Reconciliar(ctx context.Context) error {
	if err := m.db.WithContext(ctx).Exec(criarTabelaEmpreendedores).Error; err != nil {
		return fmt.Errorf("failed to create empreendedores table: %w", err)
	}

	if err := m.db.WithContext(ctx).Exec(criarTabelaUsuarios).Error; err != nil {
		return fmt.Errorf("failed to create usuarios table: %w", err)
	}

	existentes, err := m.colunasExistentes(ctx, "empreendedores")
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	for _, col := range colunasAdicionais {
		if existentes[col.Nome] {
			m.logger.Info("column already present", "column", col.Nome)
			continue
		}

		sql := fmt.Sprintf("ALTER TABLE empreendedores ADD COLUMN %s %s", col.Nome, col.Tipo)
		if err := m.db.WithContext(ctx).Exec(sql).Error; err != nil {
			m.logger.Error("failed to add column", "column", col.Nome, "error", err)
			continue
		}
		m.logger.Info("column added", "column", col.Nome)
	}

	return nil
}

// colunasExistentes introspecta as colunas atuais da tabela via PRAGMA
func (m *MigradorEsquema) colunasExistentes(ctx context.Context, tabela string) (map[string]bool, error) {
	var linhas []struct {
		Name string `gorm:"column:name"`
	}

	sql := fmt.Sprintf("PRAGMA table_info(%s)", tabela)
	if err := m.db.WithContext(ctx).Raw(sql).Scan(&linhas).Error; err != nil {
		return nil, err
	}

	colunas := make(map[string]bool, len(linhas))
	for _, linha := range linhas {
		colunas[linha.Name] = true
	}
	return colunas, nil
}
