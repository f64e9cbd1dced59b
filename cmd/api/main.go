package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"intent-chatbot/config"
	_ "intent-chatbot/docs" // Swagger docs
	chatHTTP "intent-chatbot/internal/chat/delivery/http"
	chatUsecase "intent-chatbot/internal/chat/usecase"
	"intent-chatbot/internal/classifier"
	"intent-chatbot/internal/classifier/repository"
	"intent-chatbot/internal/conversation"
	"intent-chatbot/internal/httpserver"
	"intent-chatbot/internal/intent"
	"intent-chatbot/internal/middleware"
	"intent-chatbot/internal/pipeline"
	"intent-chatbot/internal/resolver"
	"intent-chatbot/pkg/log"
)

// @title       Intent Chatbot API
// @description Contextual intent-resolution chatbot: embeddings, intent classification and fallback suggestions.
// @version     1
// @host        localhost:5001
// @schemes     http
func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intent Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Intent catalog
	catalog, err := intent.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load intent catalog %s: %v", cfg.Catalog.Path, err)
	}
	logger.Infof(ctx, "Loaded %d intents from %s", catalog.Len(), cfg.Catalog.Path)

	// 4. Embedder and classifier (Qdrant only backs the neighbours classifier)
	var (
		patternRepo repository.PatternRepository
		readyCheck  func(ctx context.Context) error
	)
	if cfg.Classifier.Type == classifier.NameNeighbors {
		qdrantClient := pipeline.NewQdrantClient(cfg.Qdrant)
		patternRepo = pipeline.NewPatternRepository(qdrantClient, cfg.Qdrant, logger)
		readyCheck = func(ctx context.Context) error {
			ok, err := qdrantClient.CollectionExists(ctx, cfg.Qdrant.CollectionName)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("collection %s not found, run `trainer index`", cfg.Qdrant.CollectionName)
			}
			return nil
		}
		logger.Infof(ctx, "Qdrant URL: %s (collection %s)", cfg.Qdrant.URL, cfg.Qdrant.CollectionName)
	}

	emb, clf, err := pipeline.NewServing(cfg, catalog, patternRepo)
	if err != nil {
		logger.Fatalf(ctx, "Failed to build %s/%s pipeline: %v", cfg.Embedder.Type, cfg.Classifier.Type, err)
	}

	// 5. Resolver
	res, err := resolver.New(emb, clf, catalog, logger,
		resolver.WithThreshold(cfg.Resolver.Threshold),
		resolver.WithSuggestionCount(cfg.Resolver.Suggestions),
	)
	if err != nil {
		logger.Fatalf(ctx, "Failed to build resolver: %v", err)
	}
	logger.Infof(ctx, "Resolver ready: embedder=%s classifier=%s threshold=%.2f", emb.Name(), cfg.Classifier.Type, res.Threshold())

	// 6. Chat domain
	store := conversation.NewStore(cfg.Session.MaxSessions, cfg.Session.TTL, cfg.Resolver.ContextWindow)
	chatUC := chatUsecase.New(store, res, catalog, cfg.Resolver.ContextWindow, logger)
	chatHandler := chatHTTP.New(logger, chatUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.Session, cfg.RateLimit),
		ReadyCheck:  readyCheck,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
