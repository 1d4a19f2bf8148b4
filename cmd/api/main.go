package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"career-advisor-bot/config"
	_ "career-advisor-bot/docs" // Swagger docs
	"career-advisor-bot/internal/chat/backend"
	chatHTTP "career-advisor-bot/internal/chat/delivery/http"
	"career-advisor-bot/internal/chat/session"
	"career-advisor-bot/internal/chat/usecase"
	"career-advisor-bot/internal/httpserver"
	"career-advisor-bot/internal/knowledge"
	"career-advisor-bot/internal/middleware"
	"career-advisor-bot/pkg/gemini"
	"career-advisor-bot/pkg/log"
)

// @title       Career Advisor Bot API
// @description Conversational career guidance with intent routing, per-user sessions, and a Gemini LLM fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
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

	logger.Info(ctx, "Starting Career Advisor Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Knowledge base
	kb, err := knowledge.Load(cfg.Knowledge.DataPath)
	if err != nil {
		logger.Warnf(ctx, "Knowledge base not available (%s): %v", cfg.Knowledge.DataPath, err)
		logger.Warn(ctx, "Category and skill lookups are disabled until data.json is provided")
		kb = knowledge.NewBase(nil, nil)
	} else {
		logger.Infof(ctx, "Knowledge base loaded: %d skills, %d categories",
			len(kb.SkillNames()), len(kb.Categories()))
	}

	// 4. Generative backend (optional)
	var geminiClient *gemini.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient = gemini.NewClient(cfg.Gemini.APIKey)
		geminiClient.SetModel(cfg.Gemini.Model)
		geminiClient.SetTimeout(cfg.Gemini.Timeout)
		logger.Infof(ctx, "Gemini backend initialized with model %s", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, generative fallback disabled")
	}
	be := backend.New(geminiClient)

	// 5. Chat domain
	sessions := session.NewStore(cfg.Session.MaxUsers, cfg.Session.IdleTTL)
	chatUC := usecase.New(logger, kb, sessions, be)
	chatHandler := chatHTTP.New(logger, chatUC)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
