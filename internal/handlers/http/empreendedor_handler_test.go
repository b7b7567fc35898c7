package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/empreendelocal-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
	"github.com/rafabene/empreendelocal-backend/internal/domain/ports"
	"github.com/rafabene/empreendelocal-backend/internal/domain/validation"
	"github.com/rafabene/empreendelocal-backend/internal/services"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...any)        {}
func (stubLogger) Error(string, ...any)       {}
func (stubLogger) Debug(string, ...any)       {}
func (stubLogger) Warn(string, ...any)        {}
func (l stubLogger) With(...any) ports.Logger { return l }

type stubUnitOfWork struct{}

func (stubUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (stubUnitOfWork) Commit(context.Context) error                       { return nil }
func (stubUnitOfWork) Rollback(context.Context) error                     { return nil }
func (stubUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeStorage struct {
	salvos int
}

func (f *fakeStorage) Salvar(_ context.Context, _ *ports.ArquivoEnviado) (string, error) {
	f.salvos++
	return "imagem-teste.jpg", nil
}

func (f *fakeStorage) Remover(context.Context, string) error { return nil }

type fakeRepo struct {
	registros map[uint]*entities.Empreendedor
	proximoID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{registros: make(map[uint]*entities.Empreendedor), proximoID: 1}
}

func (f *fakeRepo) Create(_ context.Context, e *entities.Empreendedor) error {
	e.ID = f.proximoID
	f.proximoID++
	f.registros[e.ID] = e
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*entities.Empreendedor, error) {
	return f.registros[id], nil
}

func (f *fakeRepo) List(_ context.Context) ([]*entities.Empreendedor, error) {
	result := make([]*entities.Empreendedor, 0, len(f.registros))
	for _, e := range f.registros {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	delete(f.registros, id)
	return nil
}

func setupRouter(repo *fakeRepo, store *fakeStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)

	regras := validation.RegrasImagem{
		TiposAceitos:  []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		TamanhoMaximo: 5 * 1024 * 1024,
	}
	service := services.NewEmpreendedorService(repo, store, stubUnitOfWork{}, stubLogger{}, regras)
	handler := NewEmpreendedorHandler(service)

	router := gin.New()
	router.GET("/api/empreendedores", handler.Listar)
	router.GET("/api/empreendedores/:id", handler.Buscar)
	router.POST("/api/empreendedores", handler.Cadastrar)
	router.DELETE("/api/empreendedores/:id", handler.Deletar)
	return router
}

// corpoDeCadastro monta um formulário multipart com os campos e,
// opcionalmente, uma imagem jpeg
func corpoDeCadastro(t *testing.T, campos map[string]string, comImagem bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for nome, valor := range campos {
		if err := writer.WriteField(nome, valor); err != nil {
			t.Fatalf("falha ao escrever campo %s: %v", nome, err)
		}
	}

	if comImagem {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="imagem"; filename="fachada.jpg"`)
		header.Set("Content-Type", "image/jpeg")

		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("falha ao criar parte da imagem: %v", err)
		}
		if _, err := part.Write([]byte("bytes da imagem")); err != nil {
			t.Fatalf("falha ao escrever imagem: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("falha ao fechar multipart: %v", err)
	}
	return body, writer.FormDataContentType()
}

func camposDoFormulario() map[string]string {
	return map[string]string{
		"nome":              "Padaria do Zé",
		"categoria":         "Alimentação",
		"lat":               "-4.044",
		"lng":               "-39.455",
		"horaInicio":        "06:00",
		"horaFim":           "12:00",
		"diasFuncionamento": `["Seg","Ter"]`,
		"tipoLoja":          "física",
	}
}

func TestEmpreendedorHandler_Cadastrar(t *testing.T) {
	t.Run("cadastro válido retorna 201 com o id", func(t *testing.T) {
		repo := newFakeRepo()
		router := setupRouter(repo, &fakeStorage{})

		body, contentType := corpoDeCadastro(t, camposDoFormulario(), true)
		req := httptest.NewRequest("POST", "/api/empreendedores", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("esperava 201, obteve %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		if resp.ID != 1 {
			t.Errorf("esperava id 1, obteve %d", resp.ID)
		}

		registro := repo.registros[1]
		if registro == nil {
			t.Fatal("registro não foi persistido")
		}
		if registro.Email != nil || registro.Telefone != nil {
			t.Error("opcionais não enviados deveriam ser nil")
		}
	})

	t.Run("sem imagem retorna 400 e não persiste", func(t *testing.T) {
		repo := newFakeRepo()
		store := &fakeStorage{}
		router := setupRouter(repo, store)

		body, contentType := corpoDeCadastro(t, camposDoFormulario(), false)
		req := httptest.NewRequest("POST", "/api/empreendedores", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "error.imagem_obrigatoria") {
			t.Errorf("esperava motivo de imagem obrigatória, obteve %s", w.Body.String())
		}
		if !strings.Contains(w.Body.String(), domainerrors.ProblemTypeValidation) {
			t.Errorf("esperava o tipo de problema de validação, obteve %s", w.Body.String())
		}
		if store.salvos != 0 {
			t.Error("nenhuma imagem deveria ter sido gravada")
		}
		if len(repo.registros) != 0 {
			t.Error("nenhum registro deveria ter sido persistido")
		}
	})

	t.Run("nome curto retorna o primeiro motivo de rejeição", func(t *testing.T) {
		router := setupRouter(newFakeRepo(), &fakeStorage{})

		campos := camposDoFormulario()
		campos["nome"] = "Jo"
		campos["categoria"] = "Esportes"

		body, contentType := corpoDeCadastro(t, campos, true)
		req := httptest.NewRequest("POST", "/api/empreendedores", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperava 400, obteve %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "error.nome_muito_curto") {
			t.Errorf("esperava motivo de nome curto, obteve %s", w.Body.String())
		}
	})
}

func TestEmpreendedorHandler_Buscar(t *testing.T) {
	t.Run("id não numérico retorna 400", func(t *testing.T) {
		router := setupRouter(newFakeRepo(), &fakeStorage{})

		req := httptest.NewRequest("GET", "/api/empreendedores/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
	})

	t.Run("id desconhecido retorna 404", func(t *testing.T) {
		router := setupRouter(newFakeRepo(), &fakeStorage{})

		req := httptest.NewRequest("GET", "/api/empreendedores/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("esperava 404, obteve %d", w.Code)
		}
	})
}

func TestEmpreendedorHandler_Deletar(t *testing.T) {
	t.Run("remove cadastro existente", func(t *testing.T) {
		repo := newFakeRepo()
		router := setupRouter(repo, &fakeStorage{})

		body, contentType := corpoDeCadastro(t, camposDoFormulario(), true)
		req := httptest.NewRequest("POST", "/api/empreendedores", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("cadastro falhou: %d", w.Code)
		}

		req = httptest.NewRequest("DELETE", "/api/empreendedores/1", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava 200, obteve %d", w.Code)
		}
		if len(repo.registros) != 0 {
			t.Error("registro deveria ter sido removido")
		}
	})
}
