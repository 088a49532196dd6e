package main

import (
	"context"
	"log"

	"peticiona-backend/config"
	"peticiona-backend/formatter"
	"peticiona-backend/handlers"
	"peticiona-backend/logging"
	"peticiona-backend/repository"
	"peticiona-backend/service"
	"peticiona-backend/storage"

	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	// Load .env from the current directory first, then the project root
	foundEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if !foundEnv {
		logger.Warn("no .env file found, using environment variables")
	}

	ctx := context.Background()

	db, err := initPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize postgres", zap.Error(err))
	}
	defer db.Close()
	logger.Info("postgres connection established")

	fileStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	logger.Info("storage initialized", zap.String("type", string(storage.ConfigFromEnv().Type)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	fileRepo := repository.NewFileRepository(db)
	jobRepo := repository.NewGenerationJobRepository(db)

	geminiClient, err := initGemini(ctx, cfg.GeminiAPIKey, logger)
	if err != nil {
		logger.Fatal("failed to initialize gemini", zap.Error(err))
	}
	defer geminiClient.Close()

	// Services
	formattingService := service.NewFormattingService(
		service.FormattingWithTemplates(templateRepo),
		service.FormattingWithCache(formatter.NewCache(cfg.CacheSize)),
		service.FormattingWithLogger(logger.Named("formatting")),
		service.FormattingWithMaxBatchSize(cfg.MaxBatchSize),
	)

	templateService := service.NewTemplateService(
		service.WithTemplateRepository(templateRepo),
	)

	documentService := service.NewDocumentService(
		service.DocumentWithRepository(documentRepo),
		service.DocumentWithFileRepository(fileRepo),
		service.DocumentWithStorage(fileStorage),
		service.DocumentWithFormattingService(formattingService),
		service.DocumentWithLogger(logger.Named("documents")),
		service.DocumentWithMaxUploadBytes(cfg.MaxUploadBytes),
	)

	draftService := service.NewDraftService(
		service.DraftWithGenerationJobRepository(jobRepo),
		service.DraftWithUsers(userRepo),
		service.DraftWithDocuments(documentService),
		service.DraftWithFormattingService(formattingService),
		service.DraftWithGenerator(service.NewGeminiGenerator(geminiClient, cfg.GeminiModel, logger.Named("gemini"))),
		service.DraftWithLogger(logger.Named("drafts")),
	)

	router := handlers.Router{
		Format:    handlers.NewFormatHandler(formattingService),
		Templates: handlers.NewTemplateHandler(templateService),
		Documents: handlers.NewDocumentHandler(documentService),
		Files:     handlers.NewFileHandler(documentService, cfg.MaxUploadBytes),
		Drafts:    handlers.NewDraftHandler(draftService, logger.Named("drafts")),
		Logger:    logger.Named("http"),
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Engine().Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func initGemini(ctx context.Context, apiKey string, logger *zap.Logger) (*genai.Client, error) {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, drafting jobs will fail")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	logger.Info("gemini client initialized")
	return client, nil
}
