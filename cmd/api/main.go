package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rafabene/empreendelocal-backend/internal/domain/validation"
	httphandlers "github.com/rafabene/empreendelocal-backend/internal/handlers/http"
	"github.com/rafabene/empreendelocal-backend/internal/handlers/middleware"
	"github.com/rafabene/empreendelocal-backend/internal/infrastructure/config"
	"github.com/rafabene/empreendelocal-backend/internal/infrastructure/i18n"
	"github.com/rafabene/empreendelocal-backend/internal/infrastructure/logging"
	"github.com/rafabene/empreendelocal-backend/internal/infrastructure/persistence/sqlite"
	"github.com/rafabene/empreendelocal-backend/internal/infrastructure/storage"
	"github.com/rafabene/empreendelocal-backend/internal/services"
)

func main() {
	// Carregar variáveis do .env, se existir
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting empreendelocal backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := sqlite.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Reconciliar o esquema antes de aceitar requisições
	migrador := sqlite.NewMigradorEsquema(db, logger)
	if err := migrador.Reconciliar(context.Background()); err != nil {
		logger.Error("failed to reconcile schema", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar colaborador de upload
	diskStore, err := storage.NewDiskStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes, logger)
	if err != nil {
		logger.Error("failed to initialize upload storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	empreendedorRepo := sqlite.NewEmpreendedorRepository(db)
	usuarioRepo := sqlite.NewUsuarioRepository(db)
	uow := sqlite.NewUnitOfWork(db)

	// Inicializar services
	regrasImagem := validation.RegrasImagem{
		TiposAceitos:  storage.TiposAceitos,
		TamanhoMaximo: cfg.Upload.MaxSizeBytes,
	}
	empreendedorService := services.NewEmpreendedorService(empreendedorRepo, diskStore, uow, logger, regrasImagem)
	usuarioService := services.NewUsuarioService(usuarioRepo, uow, logger)

	// Inicializar handlers
	empreendedorHandler := httphandlers.NewEmpreendedorHandler(empreendedorService)
	authHandler := httphandlers.NewAuthHandler(usuarioService, cfg.Env)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Imagens de cadastro servidas estaticamente
	router.Static("/uploads", cfg.Upload.Dir)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		empreendedores := api.Group("/empreendedores")
		{
			empreendedores.GET("", empreendedorHandler.Listar)
			empreendedores.GET("/:id", empreendedorHandler.Buscar)
			empreendedores.POST("", empreendedorHandler.Cadastrar)
			empreendedores.DELETE("/:id", empreendedorHandler.Deletar)
		}

		api.POST("/recover-password", authHandler.RecuperarSenha)
		api.POST("/update-password", authHandler.AtualizarSenha)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
