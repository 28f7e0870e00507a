package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/prefeitura-rio/app-research-agent/docs"
	"github.com/prefeitura-rio/app-research-agent/internal/agent"
	"github.com/prefeitura-rio/app-research-agent/internal/api/routes"
	"github.com/prefeitura-rio/app-research-agent/internal/config"
	"github.com/prefeitura-rio/app-research-agent/internal/logging"
	"github.com/prefeitura-rio/app-research-agent/internal/observability"
	"go.uber.org/zap"
)

// @title           Research Agent API
// @version         1.0
// @description     Chat backend that routes prompts to arXiv search and LLM paper analysis (Groq or Google Gemini)
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	observability.InitTracer(cfg, logger)
	defer observability.ShutdownTracer(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := agent.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build agent router", zap.Error(err))
	}

	r, err := routes.SetupRouter(cfg, router, logger)
	if err != nil {
		logger.Fatal("failed to set up routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
