package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/empreendelocal-backend/internal/domain/errors"
	"github.com/rafabene/empreendelocal-backend/internal/domain/ports"
	"github.com/rafabene/empreendelocal-backend/internal/domain/validation"
	"github.com/rafabene/empreendelocal-backend/internal/handlers/dto"
	"github.com/rafabene/empreendelocal-backend/internal/services"
)

// EmpreendedorHandler lida com requisições HTTP dos cadastros
type EmpreendedorHandler struct {
	service *services.EmpreendedorService
}

// NewEmpreendedorHandler cria um novo EmpreendedorHandler
func NewEmpreendedorHandler(service *services.EmpreendedorService) *EmpreendedorHandler {
	return &EmpreendedorHandler{
		service: service,
	}
}

// Listar retorna todos os cadastros
func (h *EmpreendedorHandler) Listar(c *gin.Context) {
	empreendedores, err := h.service.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpreendedorResponses(empreendedores))
}

// Buscar retorna um cadastro pelo ID
func (h *EmpreendedorHandler) Buscar(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	empreendedor, err := h.service.Buscar(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrEmpreendedorNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Empreendedor"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpreendedorResponse(empreendedor))
}

// Cadastrar recebe o formulário multipart de cadastro com a imagem
func (h *EmpreendedorHandler) Cadastrar(c *gin.Context) {
	campos := validation.Cadastro{
		Nome:              c.PostForm("nome"),
		Descricao:         c.PostForm("descricao"),
		Categoria:         c.PostForm("categoria"),
		Endereco:          c.PostForm("endereco"),
		Lat:               c.PostForm("lat"),
		Lng:               c.PostForm("lng"),
		HoraInicio:        c.PostForm("horaInicio"),
		HoraFim:           c.PostForm("horaFim"),
		HoraTardeInicio:   c.PostForm("horaTardeInicio"),
		HoraTardeFim:      c.PostForm("horaTardeFim"),
		DiasFuncionamento: c.PostForm("diasFuncionamento"),
		TipoLoja:          c.PostForm("tipoLoja"),
		Telefone:          c.PostForm("telefone"),
		Email:             c.PostForm("email"),
		Instagram:         c.PostForm("instagram"),
	}

	// Anexo ausente não é erro aqui: a validação do cadastro é quem
	// decide, na ordem fixa dos motivos de rejeição
	var arquivo *ports.ArquivoEnviado
	if fileHeader, err := c.FormFile("imagem"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
			return
		}
		defer f.Close()

		arquivo = &ports.ArquivoEnviado{
			NomeOriginal: fileHeader.Filename,
			ContentType:  fileHeader.Header.Get("Content-Type"),
			Tamanho:      fileHeader.Size,
			Conteudo:     f,
		}
	}

	empreendedor, err := h.service.Cadastrar(c.Request.Context(), campos, arquivo)
	if err != nil {
		if errors.EhErroDeCadastro(err) {
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err.Error(), nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.CadastroCriadoResponse{
		ID:      empreendedor.ID,
		Message: dto.T(c, "msg.cadastro_realizado"),
	})
}

// Deletar remove um cadastro e a imagem associada
func (h *EmpreendedorHandler) Deletar(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Deletar(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrEmpreendedorNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Empreendedor"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "msg.deletado")})
}

// parseID valida o parâmetro de rota: inteiro positivo
func (h *EmpreendedorHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.id_invalido"))
		return 0, false
	}
	return uint(id), true
}
