package agent

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prefeitura-rio/app-research-agent/internal/agent/adapter"
	"github.com/prefeitura-rio/app-research-agent/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// NewCompletionProvider selects the LLM backend named by cfg.LLMProvider.
// A missing API key yields a provider whose IsAvailable is false.
func NewCompletionProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (adapter.CompletionProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.LLMProvider {
	case config.ProviderGroq:
		return adapter.NewGroqAdapter(&http.Client{Timeout: cfg.RequestTimeout}, adapter.GroqConfig{
			APIKey:  cfg.LLMAPIKey(),
			Model:   cfg.GroqModel,
			BaseURL: cfg.GroqBaseURL,
			Timeout: cfg.RequestTimeout,
		}), nil

	case config.ProviderGemini:
		var client *genai.Client
		if key := cfg.LLMAPIKey(); key != "" {
			var err error
			client, err = genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  key,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return nil, fmt.Errorf("creating gemini client: %w", err)
			}
		} else {
			logger.Warn("GEMINI_API_KEY not set, future analysis and query normalization are unavailable")
		}
		return adapter.NewGeminiAdapter(client, adapter.GeminiConfig{ChatModel: cfg.GeminiChatModel}), nil
	}

	return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
}

// NewFromConfig builds the arXiv client, the configured LLM client and the router
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Router, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	search := adapter.NewArxivAdapter(&http.Client{Timeout: cfg.RequestTimeout}, adapter.ArxivConfig{
		BaseURL:   cfg.ArxivAPIURL,
		UserAgent: cfg.ArxivUserAgent,
		Timeout:   cfg.RequestTimeout,
	})

	completion, err := NewCompletionProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if !completion.IsAvailable() {
		logger.Warn("LLM provider has no API key", zap.String("provider", completion.Name()))
	}

	logger.Info("agent router configured",
		zap.String("search_provider", search.Name()),
		zap.String("llm_provider", completion.Name()),
		zap.String("llm_model", completion.Model()),
		zap.Bool("query_normalization", cfg.QueryNormalizationEnabled),
		zap.Duration("request_timeout", cfg.RequestTimeout),
	)

	return NewRouter(search, completion, Options{
		RequestTimeout:       cfg.RequestTimeout,
		NormalizationEnabled: cfg.QueryNormalizationEnabled,
	}, logger), nil
}
