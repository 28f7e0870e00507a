package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// GroqConfig holds the Groq chat completion settings
type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// DefaultGroqConfig returns the public Groq endpoint and the default model
func DefaultGroqConfig() GroqConfig {
	return GroqConfig{
		Model:   "llama3-8b-8192",
		BaseURL: "https://api.groq.com/openai/v1",
		Timeout: 60 * time.Second,
	}
}

// GroqAdapter talks to Groq's OpenAI-compatible chat completions API
type GroqAdapter struct {
	client *http.Client
	config GroqConfig
}

// NewGroqAdapter creates the adapter; a nil client gets one with cfg.Timeout
func NewGroqAdapter(client *http.Client, cfg GroqConfig) *GroqAdapter {
	defaults := DefaultGroqConfig()
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaults.Model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &GroqAdapter{
		client: client,
		config: cfg,
	}
}

func (g *GroqAdapter) Name() string  { return "groq" }
func (g *GroqAdapter) Model() string { return g.config.Model }

// IsAvailable reports whether an API key is configured
func (g *GroqAdapter) IsAvailable() bool {
	return strings.TrimSpace(g.config.APIKey) != ""
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one system + user exchange and returns the first choice
func (g *GroqAdapter) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !g.IsAvailable() {
		return nil, fmt.Errorf("%w: groq API key is not configured", models.ErrProviderUnavailable)
	}

	ctx, span := otel.Tracer("adapter").Start(ctx, "groq.complete")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", g.config.Model),
		attribute.Float64("llm.temperature", req.Temperature),
		attribute.Int("llm.prompt_chars", len(req.UserContent)),
	)

	messages := make([]groqMessage, 0, 2)
	if strings.TrimSpace(req.SystemInstruction) != "" {
		messages = append(messages, groqMessage{Role: "system", Content: req.SystemInstruction})
	}
	messages = append(messages, groqMessage{Role: "user", Content: req.UserContent})

	payload, err := json.Marshal(groqRequest{
		Model:       g.config.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("encoding groq request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("%w: building groq request: %v", models.ErrProviderUnavailable, err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, failSpan(span, classifyTransportError(ctx, g.Name(), err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("llm.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, failSpan(span, classifyTransportError(ctx, g.Name(), err))
	}
	if resp.StatusCode >= 400 {
		return nil, failSpan(span, classifyCompletionStatus(g.Name(), resp.StatusCode, body))
	}

	var parsed groqResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, failSpan(span, fmt.Errorf("%w: decoding groq response: %v", models.ErrProviderUnavailable, err))
	}
	if len(parsed.Choices) == 0 {
		return nil, failSpan(span, fmt.Errorf("%w: groq returned no choices", models.ErrProviderUnavailable))
	}

	return &Completion{
		Text:     strings.TrimSpace(parsed.Choices[0].Message.Content),
		Provider: g.Name(),
		Model:    g.config.Model,
	}, nil
}
