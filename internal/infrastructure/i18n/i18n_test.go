package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// criarLocalesDeTeste grava catálogos temporários no formato dos
// arquivos reais de locales
func criarLocalesDeTeste(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	ptBR := `{
  "msg.cadastro_realizado": "Cadastro realizado com sucesso!",
  "msg.boas_vindas": "Bem-vindo, {{.Nome}}!",
  "error.nome_muito_curto": "Nome deve ter pelo menos 3 caracteres"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "pt-BR.json"), []byte(ptBR), 0644); err != nil { //nolint:gosec
		t.Fatalf("falha ao criar pt-BR.json: %v", err)
	}

	en := `{
  "msg.cadastro_realizado": "Registration completed successfully!",
  "msg.boas_vindas": "Welcome, {{.Nome}}!"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(en), 0644); err != nil { //nolint:gosec
		t.Fatalf("falha ao criar en.json: %v", err)
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("carrega os catálogos do diretório", func(t *testing.T) {
		service, err := NewService(criarLocalesDeTeste(t), "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}

		if service.GetDefaultLanguage() != "pt-BR" {
			t.Errorf("esperava idioma padrão 'pt-BR', obteve %q", service.GetDefaultLanguage())
		}
		if idiomas := service.GetSupportedLanguages(); len(idiomas) != 2 {
			t.Errorf("esperava 2 idiomas, obteve %d", len(idiomas))
		}
	})

	t.Run("erro quando o diretório está vazio", func(t *testing.T) {
		if _, err := NewService(t.TempDir(), "pt-BR"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando o idioma padrão não tem catálogo", func(t *testing.T) {
		if _, err := NewService(criarLocalesDeTeste(t), "fr"); err == nil {
			t.Error("esperava erro para idioma padrão sem catálogo")
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewService(criarLocalesDeTeste(t), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz no idioma pedido", func(t *testing.T) {
		got := service.T("en", "msg.cadastro_realizado")
		if got != "Registration completed successfully!" {
			t.Errorf("tradução errada: %q", got)
		}
	})

	t.Run("interpola parâmetros", func(t *testing.T) {
		got := service.T("pt-BR", "msg.boas_vindas", map[string]interface{}{"Nome": "Zé"})
		if got != "Bem-vindo, Zé!" {
			t.Errorf("interpolação errada: %q", got)
		}
	})

	t.Run("cai para o idioma padrão quando a chave falta", func(t *testing.T) {
		got := service.T("en", "error.nome_muito_curto")
		if got != "Nome deve ter pelo menos 3 caracteres" {
			t.Errorf("esperava fallback para pt-BR, obteve %q", got)
		}
	})

	t.Run("retorna a própria chave quando não há tradução", func(t *testing.T) {
		got := service.T("pt-BR", "chave.inexistente")
		if got != "chave.inexistente" {
			t.Errorf("esperava a chave de volta, obteve %q", got)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	service, err := NewService(criarLocalesDeTeste(t), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	casos := []struct {
		idioma   string
		esperado bool
	}{
		{"pt-BR", true},
		{"en", true},
		{"fr", false},
	}

	for _, caso := range casos {
		t.Run(caso.idioma, func(t *testing.T) {
			if got := service.IsLanguageSupported(caso.idioma); got != caso.esperado {
				t.Errorf("para %q, esperava %v, obteve %v", caso.idioma, caso.esperado, got)
			}
		})
	}
}

func TestService_LeiturasConcorrentes(t *testing.T) {
	service, err := NewService(criarLocalesDeTeste(t), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "msg.boas_vindas", map[string]interface{}{"Nome": "Zé"})
		}()
		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("en")
		}()
	}
	wg.Wait()
}
