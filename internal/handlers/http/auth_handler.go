package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/empreendelocal-backend/internal/domain/errors"
	"github.com/rafabene/empreendelocal-backend/internal/handlers/dto"
	"github.com/rafabene/empreendelocal-backend/internal/services"
)

// AuthHandler lida com a recuperação de senha
type AuthHandler struct {
	usuarioService *services.UsuarioService
	env            string
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(usuarioService *services.UsuarioService, env string) *AuthHandler {
	return &AuthHandler{
		usuarioService: usuarioService,
		env:            env,
	}
}

// RecuperarSenha gera um token de recuperação para o email informado
func (h *AuthHandler) RecuperarSenha(c *gin.Context) {
	var req dto.RecoverPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, "error.validation.detail", camposInvalidos(err)))
		return
	}

	token, err := h.usuarioService.RecuperarSenha(c.Request.Context(), req.Email)
	if err != nil {
		if errs.Is(err, errors.ErrEmailNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Email"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	response := dto.RecoverPasswordResponse{
		Message: dto.T(c, "msg.token_gerado"),
	}
	// Sem envio de email implementado, o token só sai na resposta em dev
	if h.env != "production" {
		response.Token = token
	}

	c.JSON(http.StatusOK, response)
}

// AtualizarSenha troca a senha a partir de um token de recuperação
func (h *AuthHandler) AtualizarSenha(c *gin.Context) {
	var req dto.UpdatePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, "error.validation.detail", camposInvalidos(err)))
		return
	}

	if err := h.usuarioService.AtualizarSenha(c.Request.Context(), req.Token, req.NovaSenha); err != nil {
		switch {
		case errs.Is(err, errors.ErrTokenInvalido):
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Token"))
		case errs.Is(err, errors.ErrTokenExpirado):
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.token_expirado"))
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "msg.senha_atualizada")})
}

// camposInvalidos extrai os erros de binding campo a campo
func camposInvalidos(err error) []dto.ValidationError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}

	result := make([]dto.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, dto.ValidationError{
			Field:   fe.Field(),
			Message: fe.Error(),
			Tag:     fe.Tag(),
		})
	}
	return result
}
