package adapter

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// ArxivConfig holds the arXiv endpoint settings
type ArxivConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// DefaultArxivConfig returns the public arXiv export endpoint settings
func DefaultArxivConfig() ArxivConfig {
	return ArxivConfig{
		BaseURL:   "https://export.arxiv.org/api/query",
		UserAgent: "app-research-agent/1.0",
		Timeout:   30 * time.Second,
	}
}

// ArxivAdapter queries the arXiv Atom API
type ArxivAdapter struct {
	client *http.Client
	config ArxivConfig
}

// NewArxivAdapter creates the adapter; a nil client gets one with cfg.Timeout
func NewArxivAdapter(client *http.Client, cfg ArxivConfig) *ArxivAdapter {
	defaults := DefaultArxivConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &ArxivAdapter{
		client: client,
		config: cfg,
	}
}

// Name returns the provider identifier
func (a *ArxivAdapter) Name() string { return "arxiv" }

// IsAvailable needs only an HTTP client; arXiv takes no credentials
func (a *ArxivAdapter) IsAvailable() bool { return a.client != nil }

// Search runs query against arXiv sorted by relevance.
// maxResults above models.MaxMaxResults is clamped; values <= 0 are rejected.
func (a *ArxivAdapter) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty arXiv query", models.ErrInvalidArgument)
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("%w: max_results must be positive, got %d", models.ErrInvalidArgument, maxResults)
	}
	if maxResults > models.MaxMaxResults {
		maxResults = models.MaxMaxResults
	}

	ctx, span := otel.Tracer("adapter").Start(ctx, "arxiv.search")
	defer span.End()
	span.SetAttributes(
		attribute.String("arxiv.query", query),
		attribute.Int("arxiv.max_results", maxResults),
	)

	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("%w: building arXiv request: %v", models.ErrProviderUnavailable, err))
	}
	req.Header.Set("User-Agent", a.config.UserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, failSpan(span, classifyTransportError(ctx, a.Name(), err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("arxiv.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, failSpan(span, fmt.Errorf("%w: %s", models.ErrInvalidQuery, feedErrorSummary(body)))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failSpan(span, fmt.Errorf("%w: arXiv returned HTTP %d", models.ErrProviderUnavailable, resp.StatusCode))
	}

	var feed arxivFeed
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&feed); err != nil {
		if isTimeout(ctx, err) {
			return nil, failSpan(span, classifyTransportError(ctx, a.Name(), err))
		}
		return nil, failSpan(span, fmt.Errorf("%w: parsing arXiv response: %v", models.ErrProviderUnavailable, err))
	}

	if msg, ok := feed.errorMessage(); ok {
		return nil, failSpan(span, fmt.Errorf("%w: %s", models.ErrInvalidQuery, msg))
	}

	n := len(feed.Entries)
	if n > maxResults {
		n = maxResults
	}
	results := make([]models.SearchResult, 0, n)
	for _, entry := range feed.Entries[:n] {
		results = append(results, entry.toResult())
	}

	span.SetAttributes(
		attribute.Int("arxiv.results", len(results)),
		attribute.Int("arxiv.total_results", feed.TotalResults),
	)
	return results, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	TotalResults int          `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults"`
	Entries      []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID              string          `xml:"id"`
	Title           string          `xml:"title"`
	Summary         string          `xml:"summary"`
	Published       string          `xml:"published"`
	Updated         string          `xml:"updated"`
	Authors         []arxivAuthor   `xml:"author"`
	Links           []arxivLink     `xml:"link"`
	Categories      []arxivCategory `xml:"category"`
	PrimaryCategory arxivCategory   `xml:"http://arxiv.org/schemas/atom primary_category"`
	DOI             string          `xml:"http://arxiv.org/schemas/atom doi"`
	Comment         string          `xml:"http://arxiv.org/schemas/atom comment"`
	JournalRef      string          `xml:"http://arxiv.org/schemas/atom journal_ref"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// errorMessage detects the single-entry error feed arXiv returns for bad queries
func (f *arxivFeed) errorMessage() (string, bool) {
	for _, e := range f.Entries {
		if strings.Contains(e.ID, "/api/errors") {
			return collapseSpace(e.Summary), true
		}
	}
	return "", false
}

func (e arxivEntry) toResult() models.SearchResult {
	r := models.SearchResult{
		EntryID:         strings.TrimSpace(e.ID),
		Title:           collapseSpace(e.Title),
		Summary:         collapseSpace(e.Summary),
		Authors:         make([]string, 0, len(e.Authors)),
		Categories:      make([]string, 0, len(e.Categories)),
		PrimaryCategory: e.PrimaryCategory.Term,
		DOI:             strings.TrimSpace(e.DOI),
		Comment:         collapseSpace(e.Comment),
		JournalRef:      collapseSpace(e.JournalRef),
	}
	for _, author := range e.Authors {
		if name := strings.TrimSpace(author.Name); name != "" {
			r.Authors = append(r.Authors, name)
		}
	}
	for _, c := range e.Categories {
		if c.Term != "" {
			r.Categories = append(r.Categories, c.Term)
		}
	}
	for _, link := range e.Links {
		if link.Title == "pdf" {
			r.PDFURL = link.Href
			break
		}
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published)); err == nil {
		r.Published = t
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Updated)); err == nil {
		r.Updated = &t
	}
	return r
}

// feedErrorSummary pulls the error summary out of a 400 response body
func feedErrorSummary(body []byte) string {
	var feed arxivFeed
	if err := xml.Unmarshal(body, &feed); err == nil {
		if msg, ok := feed.errorMessage(); ok {
			return msg
		}
	}
	return "arXiv returned HTTP 400"
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
