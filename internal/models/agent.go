package models

import "strings"

const (
	// MinMaxResults and MaxMaxResults bound max_results on every search path
	MinMaxResults = 1
	MaxMaxResults = 50

	// DefaultMaxResults is used when a JSON request omits max_results
	DefaultMaxResults = 2

	// DefaultPassthroughMaxResults is used by GET /api/arxiv/{query}
	DefaultPassthroughMaxResults = 5
)

// AgentRequest is the body accepted by every mode endpoint.
// @Description Prompt and result limit. max_results is ignored by future-analysis.
type AgentRequest struct {
	// Free-form prompt; for future-analysis it usually carries the paper text
	Prompt string `json:"prompt" form:"prompt" example:"electron learning"`
	// Number of papers to return (1-50, default 2). Ignored by future-analysis.
	MaxResults *int `json:"max_results" form:"max_results" example:"2" minimum:"1" maximum:"50"`
}

// Validate checks the request and applies defaults.
// maxPromptLength <= 0 disables the length check.
func (r *AgentRequest) Validate(maxPromptLength int) error {
	if strings.TrimSpace(r.Prompt) == "" {
		return ErrPromptRequired
	}
	if maxPromptLength > 0 && len(r.Prompt) > maxPromptLength {
		return ErrPromptTooLong
	}
	if r.MaxResults == nil {
		n := DefaultMaxResults
		r.MaxResults = &n
	}
	return ValidateMaxResults(*r.MaxResults)
}

// GetMaxResults returns max_results or the default when unset
func (r *AgentRequest) GetMaxResults() int {
	if r.MaxResults != nil {
		return *r.MaxResults
	}
	return DefaultMaxResults
}

// ValidateMaxResults rejects values outside [MinMaxResults, MaxMaxResults]
func ValidateMaxResults(n int) error {
	if n < MinMaxResults || n > MaxMaxResults {
		return ErrMaxResultsOutOfRange
	}
	return nil
}

// QuerySource tells whether the search query came from the LLM or the raw prompt
type QuerySource string

const (
	QuerySourceNormalized QuerySource = "normalized"
	QuerySourceVerbatim   QuerySource = "verbatim"
)

// QueryMeta describes the query actually sent to the search provider
type QueryMeta struct {
	Query        string      `json:"query"`
	Source       QuerySource `json:"source"`
	PromptLength int         `json:"prompt_length"`
}

// ResponsePayload is what the router hands back to the transport layer.
// Results is set for web search, Report for future analysis.
type ResponsePayload struct {
	Mode    Mode            `json:"mode"`
	Results []SearchResult  `json:"results,omitempty"`
	Report  *AnalysisReport `json:"report,omitempty"`
	Query   *QueryMeta      `json:"query,omitempty"`
}

// ErrorResponse is the body returned for every failed request
type ErrorResponse struct {
	Error   string `json:"error" example:"provider_unavailable"`
	Message string `json:"message" example:"search provider is unavailable"`
}

// ModeURI binds the {mode} path parameter of POST /api/agent/{mode}
type ModeURI struct {
	Mode string `uri:"mode" binding:"required,agentmode"`
}

// ArxivSearchRequest binds GET /api/arxiv/{query}
type ArxivSearchRequest struct {
	Query      string `uri:"query" binding:"required"`
	MaxResults *int   `form:"max_results"`
}

// GetMaxResults returns max_results or DefaultPassthroughMaxResults when unset
func (r *ArxivSearchRequest) GetMaxResults() int {
	if r.MaxResults != nil {
		return *r.MaxResults
	}
	return DefaultPassthroughMaxResults
}
