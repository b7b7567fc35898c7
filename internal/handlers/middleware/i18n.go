package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/empreendelocal-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave do idioma detectado no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave do serviço de i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware detecta o idioma de cada requisição e o deixa
// disponível para os handlers montarem respostas traduzidas
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria o middleware de detecção de idioma
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{i18nService: i18nService}
}

// DetectLanguage resolve o idioma da requisição nesta ordem:
// query ?lang=, header Accept-Language, idioma padrão do serviço
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ""

		if query := c.Query("lang"); query != "" && m.i18nService.IsLanguageSupported(query) {
			lang = query
		}
		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage percorre o header na ordem em que o cliente o
// enviou e retorna o primeiro idioma suportado. Pesos (;q=) são
// ignorados. "pt-BR,pt;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, candidato := range strings.Split(acceptLang, ",") {
		candidato = strings.TrimSpace(candidato)
		if idx := strings.Index(candidato, ";"); idx != -1 {
			candidato = candidato[:idx]
		}

		if m.i18nService.IsLanguageSupported(candidato) {
			return candidato
		}

		// pt-BR também casa com um catálogo "pt", se houver
		if base, _, ok := strings.Cut(candidato, "-"); ok {
			if m.i18nService.IsLanguageSupported(base) {
				return base
			}
		}
	}

	return ""
}
