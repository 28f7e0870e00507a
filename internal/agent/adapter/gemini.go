package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

// GeminiConfig holds the Gemini chat settings
type GeminiConfig struct {
	ChatModel string
}

// DefaultGeminiConfig returns the default chat model
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		ChatModel: "gemini-2.0-flash",
	}
}

// GeminiAdapter wraps the Gemini API client as a CompletionProvider
type GeminiAdapter struct {
	client *genai.Client
	config GeminiConfig
}

// NewGeminiAdapter creates the adapter. A nil client yields an unavailable provider.
func NewGeminiAdapter(client *genai.Client, cfg GeminiConfig) *GeminiAdapter {
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultGeminiConfig().ChatModel
	}

	return &GeminiAdapter{
		client: client,
		config: cfg,
	}
}

func (g *GeminiAdapter) Name() string  { return "gemini" }
func (g *GeminiAdapter) Model() string { return g.config.ChatModel }

// IsAvailable reports whether the client was initialized
func (g *GeminiAdapter) IsAvailable() bool {
	return g.client != nil
}

// Complete sends one system + user exchange and returns the response text
func (g *GeminiAdapter) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if g.client == nil {
		return nil, fmt.Errorf("%w: gemini client not initialized", models.ErrProviderUnavailable)
	}

	ctx, span := otel.Tracer("adapter").Start(ctx, "gemini.complete")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", g.config.ChatModel),
		attribute.Float64("llm.temperature", req.Temperature),
		attribute.Int("llm.prompt_chars", len(req.UserContent)),
	)

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if strings.TrimSpace(req.SystemInstruction) != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	content := genai.NewContentFromText(req.UserContent, genai.RoleUser)

	resp, err := g.client.Models.GenerateContent(ctx, g.config.ChatModel, []*genai.Content{content}, genConfig)
	if err != nil {
		return nil, failSpan(span, g.classifyError(ctx, err))
	}

	if resp == nil {
		return nil, failSpan(span, fmt.Errorf("%w: gemini returned no response", models.ErrProviderUnavailable))
	}

	// an empty text is a valid completion; callers decide what it means
	return &Completion{
		Text:     strings.TrimSpace(resp.Text()),
		Provider: g.Name(),
		Model:    g.config.ChatModel,
	}, nil
}

func (g *GeminiAdapter) classifyError(ctx context.Context, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyGeminiAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return classifyGeminiAPIError(*apiErrPtr)
	}
	return classifyTransportError(ctx, g.Name(), err)
}

func classifyGeminiAPIError(apiErr genai.APIError) error {
	switch {
	case apiErr.Code == http.StatusTooManyRequests, apiErr.Status == "RESOURCE_EXHAUSTED":
		return fmt.Errorf("%w: gemini: %s", models.ErrProviderQuotaExceeded, apiErr.Message)
	case apiErr.Code == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: prompt exceeds the gemini context window: %s", models.ErrInvalidArgument, apiErr.Message)
	}
	return fmt.Errorf("%w: gemini returned %d %s: %s", models.ErrProviderUnavailable, apiErr.Code, apiErr.Status, apiErr.Message)
}
