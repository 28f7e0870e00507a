package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-research-agent/internal/agent/adapter"
	"github.com/prefeitura-rio/app-research-agent/internal/agent/query"
	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	// DefaultRequestTimeout is the budget used when Options.RequestTimeout is zero
	DefaultRequestTimeout = 30 * time.Second

	// AnalysisTemperature leaves room for creative future-work suggestions
	AnalysisTemperature = 0.7
)

// AnalysisInstruction is sent with every future-analysis completion
const AnalysisInstruction = `You are an expert research analyst specializing in academic paper review and analysis.
Provide a comprehensive analysis in the following structured format:

1. Key Findings and Contributions:
   - Main research contributions
   - Novel methodologies or approaches
   - Significant results and their implications

2. Critical Analysis:
   - Strengths of the research
   - Limitations and potential weaknesses
   - Methodology assessment
   - Validity of conclusions

3. Future Research Directions:
   - Potential extensions of the work
   - Unexplored areas and opportunities
   - Technical improvements
   - Practical applications

4. Research Impact:
   - Potential influence on the field
   - Industrial applications
   - Societal implications

Format the response in clean markdown with appropriate headers and bullet points.
Be specific, technical, and provide justification for each point.`

// Options tunes the router
type Options struct {
	RequestTimeout       time.Duration
	NormalizationEnabled bool
}

// Router dispatches a prompt to the pipeline of its mode
type Router struct {
	search     adapter.SearchProvider
	completion adapter.CompletionProvider
	normalizer *query.Normalizer
	opts       Options
	logger     *zap.Logger
}

// NewRouter wires the providers. logger may be nil.
func NewRouter(search adapter.SearchProvider, completion adapter.CompletionProvider, opts Options, logger *zap.Logger) *Router {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Router{
		search:     search,
		completion: completion,
		normalizer: query.NewNormalizer(completion),
		opts:       opts,
		logger:     logger,
	}
}

// SearchProvider exposes the search backend for health checks
func (r *Router) SearchProvider() adapter.SearchProvider { return r.search }

// CompletionProvider exposes the LLM backend for health checks
func (r *Router) CompletionProvider() adapter.CompletionProvider { return r.completion }

// Route runs the pipeline for mode under the request budget.
// maxResults is only used by web search.
func (r *Router) Route(ctx context.Context, mode models.Mode, prompt string, maxResults int) (*models.ResponsePayload, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownMode, mode)
	}
	if !mode.IsImplemented() {
		return nil, fmt.Errorf("%w: %s", models.ErrNotImplemented, mode.Label())
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, models.ErrPromptRequired
	}

	ctx, span := otel.Tracer("agent").Start(ctx, "agent.route")
	defer span.End()
	span.SetAttributes(
		attribute.String("agent.mode", string(mode)),
		attribute.Int("agent.prompt_chars", len(prompt)),
	)

	ctx, cancel := context.WithTimeout(ctx, r.opts.RequestTimeout)
	defer cancel()

	var (
		payload *models.ResponsePayload
		err     error
	)
	if mode == models.ModeWebSearch {
		payload, err = r.webSearch(ctx, prompt, maxResults)
	} else {
		payload, err = r.futureAnalysis(ctx, prompt)
	}

	if err != nil {
		err = r.budgetError(ctx, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, models.ErrorCode(err))
		return nil, err
	}
	return payload, nil
}

// Search forwards query straight to the search provider under the request budget
func (r *Router) Search(ctx context.Context, q string, maxResults int) ([]models.SearchResult, error) {
	if err := models.ValidateMaxResults(maxResults); err != nil {
		return nil, err
	}
	if strings.TrimSpace(q) == "" {
		return nil, fmt.Errorf("%w: query is required", models.ErrInvalidArgument)
	}
	if r.search == nil {
		return nil, fmt.Errorf("%w: no search provider configured", models.ErrProviderUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.RequestTimeout)
	defer cancel()

	results, err := r.search.Search(ctx, q, maxResults)
	if err != nil {
		return nil, r.budgetError(ctx, err)
	}
	return results, nil
}

func (r *Router) webSearch(ctx context.Context, prompt string, maxResults int) (*models.ResponsePayload, error) {
	if err := models.ValidateMaxResults(maxResults); err != nil {
		return nil, err
	}
	if r.search == nil {
		return nil, fmt.Errorf("%w: no search provider configured", models.ErrProviderUnavailable)
	}

	meta, err := r.resolveQuery(ctx, prompt)
	if err != nil {
		return nil, err
	}

	results, err := r.search.Search(ctx, meta.Query, maxResults)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	return &models.ResponsePayload{
		Mode:    models.ModeWebSearch,
		Results: results,
		Query:   meta,
	}, nil
}

// resolveQuery normalizes the prompt. It falls back to the prompt verbatim when
// normalization is disabled, no LLM is configured or the model output is unusable.
func (r *Router) resolveQuery(ctx context.Context, prompt string) (*models.QueryMeta, error) {
	verbatim := &models.QueryMeta{
		Query:        strings.TrimSpace(prompt),
		Source:       models.QuerySourceVerbatim,
		PromptLength: len(prompt),
	}

	if !r.opts.NormalizationEnabled {
		return verbatim, nil
	}
	if r.completion == nil || !r.completion.IsAvailable() {
		r.logger.Warn("no completion provider configured, searching with the prompt verbatim")
		return verbatim, nil
	}

	normalized, err := r.normalizer.Normalize(ctx, prompt)
	if err != nil {
		if errors.Is(err, models.ErrNormalizationFailed) {
			r.logger.Warn("query normalization failed, searching with the prompt verbatim",
				zap.Error(err),
				zap.Int("prompt_chars", len(prompt)),
			)
			return verbatim, nil
		}
		return nil, err
	}

	r.logger.Debug("query normalized", zap.String("query", normalized))
	return &models.QueryMeta{
		Query:        normalized,
		Source:       models.QuerySourceNormalized,
		PromptLength: len(prompt),
	}, nil
}

func (r *Router) futureAnalysis(ctx context.Context, prompt string) (*models.ResponsePayload, error) {
	if r.completion == nil {
		return nil, fmt.Errorf("%w: no completion provider configured", models.ErrProviderUnavailable)
	}

	completion, err := r.completion.Complete(ctx, adapter.CompletionRequest{
		SystemInstruction: AnalysisInstruction,
		UserContent:       prompt,
		Temperature:       AnalysisTemperature,
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(completion.Text) == "" {
		return nil, fmt.Errorf("%w: %s returned an empty report", models.ErrProviderUnavailable, completion.Provider)
	}

	return &models.ResponsePayload{
		Mode: models.ModeFutureAnalysis,
		Report: &models.AnalysisReport{
			Text:     strings.TrimSpace(completion.Text),
			Provider: completion.Provider,
			Model:    completion.Model,
		},
	}, nil
}

// budgetError reports Timeout once the request context is done, whatever the provider said
func (r *Router) budgetError(ctx context.Context, err error) error {
	if ctx.Err() != nil && !errors.Is(err, models.ErrTimeout) {
		return fmt.Errorf("%w: %v", models.ErrTimeout, err)
	}
	return err
}
