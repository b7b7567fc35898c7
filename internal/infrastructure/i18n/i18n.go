package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Service resolve chaves de mensagem para textos traduzidos.
//
// Os catálogos são arquivos JSON planos (chave -> mensagem) no diretório
// de locales, um por idioma (pt-BR.json, en.json). Tudo é carregado na
// construção e nunca mais modificado, então as leituras são seguras para
// uso concorrente sem lock.
type Service struct {
	catalogos    map[string]map[string]string
	idiomaPadrao string
}

// NewService carrega todos os catálogos .json de localesDir. O idioma
// padrão precisa ter catálogo próprio, já que é o fallback de todas as
// buscas.
func NewService(localesDir, idiomaPadrao string) (*Service, error) {
	arquivos, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(arquivos) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	catalogos := make(map[string]map[string]string, len(arquivos))
	for _, arquivo := range arquivos {
		idioma := strings.TrimSuffix(filepath.Base(arquivo), ".json")

		catalogo, err := carregarCatalogo(arquivo)
		if err != nil {
			return nil, err
		}
		catalogos[idioma] = catalogo
	}

	if _, ok := catalogos[idiomaPadrao]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", idiomaPadrao)
	}

	return &Service{catalogos: catalogos, idiomaPadrao: idiomaPadrao}, nil
}

func carregarCatalogo(arquivo string) (map[string]string, error) {
	data, err := os.ReadFile(arquivo) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", arquivo, err)
	}

	var catalogo map[string]string
	if err := json.Unmarshal(data, &catalogo); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", arquivo, err)
	}
	return catalogo, nil
}

// T traduz uma chave para o idioma pedido, caindo para o idioma padrão
// e, por fim, para a própria chave. Parâmetros são interpolados com a
// sintaxe de template Go ({{.Nome}})
func (s *Service) T(idioma, chave string, params ...map[string]interface{}) string {
	mensagem := s.buscar(idioma, chave)
	if mensagem == "" {
		mensagem = s.buscar(s.idiomaPadrao, chave)
	}
	if mensagem == "" {
		return chave
	}

	if len(params) == 0 {
		return mensagem
	}

	tmpl, err := template.New("msg").Parse(mensagem)
	if err != nil {
		return mensagem
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return mensagem
	}
	return buf.String()
}

func (s *Service) buscar(idioma, chave string) string {
	if catalogo, ok := s.catalogos[idioma]; ok {
		return catalogo[chave]
	}
	return ""
}

// GetDefaultLanguage retorna o idioma de fallback configurado
func (s *Service) GetDefaultLanguage() string {
	return s.idiomaPadrao
}

// GetSupportedLanguages retorna os idiomas com catálogo carregado
func (s *Service) GetSupportedLanguages() []string {
	idiomas := make([]string, 0, len(s.catalogos))
	for idioma := range s.catalogos {
		idiomas = append(idiomas, idioma)
	}
	return idiomas
}

// IsLanguageSupported verifica se há catálogo para o idioma
func (s *Service) IsLanguageSupported(idioma string) bool {
	_, ok := s.catalogos[idioma]
	return ok
}
