// Package config loads application settings from environment variables.
//
// # Environment Variables
//
// ## Server
//   - SERVER_PORT: HTTP port (default: 8080)
//   - LOG_LEVEL: zap level, debug|info|warn|error (default: info)
//   - REQUEST_TIMEOUT: budget for one request, Go duration (default: 30s)
//   - MAX_PROMPT_LENGTH: longest accepted prompt in bytes (default: 200000)
//   - MAX_UPLOAD_BYTES: largest accepted PDF upload (default: 20971520)
//
// ## LLM
//   - LLM_PROVIDER: groq|gemini (default: groq)
//   - GROQ_API_KEY: Groq API key
//   - GROQ_MODEL: chat model (default: llama3-8b-8192)
//   - GROQ_BASE_URL: OpenAI-compatible base URL (default: https://api.groq.com/openai/v1)
//   - GEMINI_API_KEY: Google Gemini API key
//   - GEMINI_CHAT_MODEL: chat model (default: gemini-2.0-flash)
//   - QUERY_NORMALIZATION_ENABLED: rewrite web-search prompts into arXiv queries (default: true)
//
// ## arXiv
//   - ARXIV_API_URL: query endpoint (default: https://export.arxiv.org/api/query)
//   - ARXIV_USER_AGENT: User-Agent sent to arXiv (default: app-research-agent/1.0)
//
// ## Tracing
//   - TRACING_ENABLED: export OpenTelemetry spans (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC endpoint (default: localhost:4317)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	ServerPort string `validate:"required,numeric"`
	LogLevel   string `validate:"oneof=debug info warn error dpanic panic fatal"`

	// Request limits
	RequestTimeout  time.Duration `validate:"gt=0"`
	MaxPromptLength int           `validate:"gt=0"`
	MaxUploadBytes  int64         `validate:"gt=0"`

	// LLM configuration
	LLMProvider               string `validate:"oneof=groq gemini"`
	GroqAPIKey                string
	GroqModel                 string `validate:"required"`
	GroqBaseURL               string `validate:"required,url"`
	GeminiAPIKey              string
	GeminiChatModel           string `validate:"required"`
	QueryNormalizationEnabled bool

	// arXiv configuration
	ArxivAPIURL    string `validate:"required,url"`
	ArxivUserAgent string `validate:"required"`

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string `validate:"required_if=TracingEnabled true"`
}

// LoadConfig reads .env (when present) and the environment, then validates the result
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),

		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxPromptLength: getEnvInt("MAX_PROMPT_LENGTH", 200000),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 20<<20)),

		LLMProvider:               strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq)),
		GroqAPIKey:                getEnv("GROQ_API_KEY", ""),
		GroqModel:                 getEnv("GROQ_MODEL", "llama3-8b-8192"),
		GroqBaseURL:               getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GeminiAPIKey:              getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel:           getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
		QueryNormalizationEnabled: getEnvBool("QUERY_NORMALIZATION_ENABLED", true),

		ArxivAPIURL:    getEnv("ARXIV_API_URL", "https://export.arxiv.org/api/query"),
		ArxivUserAgent: getEnv("ARXIV_USER_AGENT", "app-research-agent/1.0"),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LLMAPIKey returns the key of the selected LLM provider
func (c *Config) LLMAPIKey() string {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.GroqAPIKey
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// bare numbers are seconds
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
