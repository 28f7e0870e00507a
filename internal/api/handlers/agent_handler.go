package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-research-agent/internal/extract"
	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"github.com/prefeitura-rio/app-research-agent/internal/utils"
	"go.uber.org/zap"
)

const (
	HeaderQuerySource = "X-Search-Query-Source"
	HeaderQuery       = "X-Search-Query"

	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatText     = "text"
)

var (
	errUploadTooLarge = fmt.Errorf("%w: uploaded file exceeds the size limit", models.ErrInvalidArgument)
	errUnreadablePDF  = fmt.Errorf("%w: uploaded file is not a readable PDF", models.ErrInvalidArgument)
	errMissingFile    = fmt.Errorf("%w: multipart requests need a PDF in the file field", models.ErrInvalidArgument)
)

// AgentRouter runs prompts through the mode pipelines
type AgentRouter interface {
	Route(ctx context.Context, mode models.Mode, prompt string, maxResults int) (*models.ResponsePayload, error)
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error)
}

// AgentHandler serves the chat UI endpoints, one per mode
type AgentHandler struct {
	router          AgentRouter
	logger          *zap.Logger
	maxPromptLength int
	maxUploadBytes  int64
}

// NewAgentHandler creates the handler. Limits <= 0 disable the matching check.
func NewAgentHandler(router AgentRouter, logger *zap.Logger, maxPromptLength int, maxUploadBytes int64) *AgentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AgentHandler{
		router:          router,
		logger:          logger,
		maxPromptLength: maxPromptLength,
		maxUploadBytes:  maxUploadBytes,
	}
}

// WebSearch godoc
// @Summary Search arXiv from a free-form prompt
// @Description The prompt is rewritten into a field-qualified arXiv query by the LLM.
// @Description When the rewrite is unusable the prompt is searched verbatim; the
// @Description `X-Search-Query-Source` header tells which one was used.
// @Description
// @Description `?format=markdown` returns the numbered list rendered by the chat UI.
// @Tags agent
// @Accept json
// @Produce json
// @Produce text/markdown
// @Param request body models.AgentRequest true "Prompt and result limit"
// @Param format query string false "Response format" Enums(json, markdown)
// @Success 200 {array} models.SearchResult
// @Header 200 {string} X-Search-Query-Source "normalized or verbatim"
// @Header 200 {string} X-Search-Query "query sent to arXiv (normalized only)"
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /api/web-search [post]
func (h *AgentHandler) WebSearch(c *gin.Context) {
	h.webSearch(c)
}

// FutureAnalysis godoc
// @Summary Analyze a paper and suggest future research directions
// @Description Accepts JSON `{prompt}` with the paper text, or `multipart/form-data` with a
// @Description PDF in `file` and optional analysis requirements in `prompt`.
// @Description `max_results` is accepted and ignored.
// @Description
// @Description The report is returned as a JSON string. `?format=html` renders it to HTML and
// @Description `?format=text` strips the markdown.
// @Tags agent
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Produce text/html
// @Produce text/plain
// @Param request body models.AgentRequest false "Paper text and requirements (JSON)"
// @Param file formData file false "Paper PDF (multipart)"
// @Param prompt formData string false "Analysis requirements (multipart)"
// @Param format query string false "Response format" Enums(json, html, text)
// @Success 200 {string} string "Markdown report"
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /api/future-analysis [post]
func (h *AgentHandler) FutureAnalysis(c *gin.Context) {
	h.futureAnalysis(c)
}

// AutoAgent godoc
// @Summary Auto agent mode (not implemented)
// @Tags agent
// @Accept json
// @Produce json
// @Param request body models.AgentRequest true "Prompt"
// @Failure 501 {object} models.ErrorResponse
// @Router /api/auto-agent [post]
func (h *AgentHandler) AutoAgent(c *gin.Context) {
	h.placeholder(c, models.ModeAutoAgent)
}

// DBQuery godoc
// @Summary Database query mode (not implemented)
// @Tags agent
// @Accept json
// @Produce json
// @Param request body models.AgentRequest true "Prompt"
// @Failure 501 {object} models.ErrorResponse
// @Router /api/db-query [post]
func (h *AgentHandler) DBQuery(c *gin.Context) {
	h.placeholder(c, models.ModeDBQuery)
}

// QA godoc
// @Summary Question answering mode (not implemented)
// @Tags agent
// @Accept json
// @Produce json
// @Param request body models.AgentRequest true "Prompt"
// @Failure 501 {object} models.ErrorResponse
// @Router /api/qa [post]
func (h *AgentHandler) QA(c *gin.Context) {
	h.placeholder(c, models.ModeQA)
}

// Agent godoc
// @Summary Run any mode by name
// @Description Accepts canonical names (`web_search`), kebab-case (`web-search`), upper case
// @Description (`WEB_SEARCH`) and the UI labels. Responses match the per-mode endpoints.
// @Tags agent
// @Accept json
// @Produce json
// @Param mode path string true "Mode" Enums(auto_agent, web_search, db_query, qa_mode, future_analysis)
// @Param request body models.AgentRequest true "Prompt and result limit"
// @Success 200 {array} models.SearchResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 501 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/agent/{mode} [post]
func (h *AgentHandler) Agent(c *gin.Context) {
	var uri models.ModeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, h.logger, "", fmt.Errorf("%w: %q", models.ErrUnknownMode, c.Param("mode")))
		return
	}
	mode, _ := models.ParseMode(uri.Mode)

	switch mode {
	case models.ModeWebSearch:
		h.webSearch(c)
	case models.ModeFutureAnalysis:
		h.futureAnalysis(c)
	default:
		h.placeholder(c, mode)
	}
}

// ArxivSearch godoc
// @Summary Search arXiv with a raw query
// @Description Passthrough to the arXiv API without LLM rewriting. Supports the arXiv
// @Description field prefixes (`ti:`, `au:`, `abs:`, `cat:`, `all:`).
// @Tags arxiv
// @Produce json
// @Param query path string true "arXiv query" example(electron learning)
// @Param max_results query int false "Number of results" default(5) minimum(1) maximum(50)
// @Success 200 {array} models.SearchResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /api/arxiv/{query} [get]
func (h *AgentHandler) ArxivSearch(c *gin.Context) {
	var req models.ArxivSearchRequest
	if err := c.ShouldBindUri(&req); err != nil {
		respondError(c, h.logger, "", fmt.Errorf("%w: query is required", models.ErrInvalidArgument))
		return
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, h.logger, "", models.ErrMaxResultsOutOfRange)
		return
	}

	results, err := h.router.Search(c.Request.Context(), req.Query, req.GetMaxResults())
	if err != nil {
		respondError(c, h.logger, "", err)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	c.JSON(http.StatusOK, results)
}

func (h *AgentHandler) webSearch(c *gin.Context) {
	req, ok := h.bindJSON(c, models.ModeWebSearch)
	if !ok {
		return
	}

	payload, err := h.router.Route(c.Request.Context(), models.ModeWebSearch, req.Prompt, req.GetMaxResults())
	if err != nil {
		respondError(c, h.logger, models.ModeWebSearch, err)
		return
	}

	if payload.Query != nil {
		c.Header(HeaderQuerySource, string(payload.Query.Source))
		if payload.Query.Source == models.QuerySourceNormalized {
			c.Header(HeaderQuery, payload.Query.Query)
		}
	}

	results := payload.Results
	if results == nil {
		results = []models.SearchResult{}
	}

	if c.Query("format") == formatMarkdown {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(utils.FormatSearchResults(results)))
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *AgentHandler) futureAnalysis(c *gin.Context) {
	var prompt string
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		var err error
		if prompt, err = h.promptFromUpload(c); err != nil {
			respondError(c, h.logger, models.ModeFutureAnalysis, err)
			return
		}
	} else {
		req, ok := h.bindJSON(c, models.ModeFutureAnalysis)
		if !ok {
			return
		}
		prompt = req.Prompt
	}

	// max_results does not apply to this mode
	payload, err := h.router.Route(c.Request.Context(), models.ModeFutureAnalysis, prompt, models.DefaultMaxResults)
	if err != nil {
		respondError(c, h.logger, models.ModeFutureAnalysis, err)
		return
	}

	report := payload.Report.Text
	switch c.Query("format") {
	case formatHTML:
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(utils.RenderHTML(report)))
	case formatText:
		c.String(http.StatusOK, utils.StripMarkdown(report))
	default:
		c.JSON(http.StatusOK, report)
	}
}

// placeholder reports the mode as unimplemented whatever the body holds
func (h *AgentHandler) placeholder(c *gin.Context, mode models.Mode) {
	var req models.AgentRequest
	_ = c.ShouldBindJSON(&req)

	_, err := h.router.Route(c.Request.Context(), mode, req.Prompt, req.GetMaxResults())
	if err == nil {
		err = fmt.Errorf("%w: %s", models.ErrNotImplemented, mode.Label())
	}
	respondError(c, h.logger, mode, err)
}

// bindJSON decodes and validates an AgentRequest, writing the 400 itself on failure
func (h *AgentHandler) bindJSON(c *gin.Context, mode models.Mode) (*models.AgentRequest, bool) {
	var req models.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, mode, fmt.Errorf("%w: malformed JSON body: %v", models.ErrInvalidArgument, err))
		return nil, false
	}

	if err := req.Validate(h.maxPromptLength); err != nil {
		if mode == models.ModeFutureAnalysis && errors.Is(err, models.ErrMaxResultsOutOfRange) {
			return &req, true
		}
		respondError(c, h.logger, mode, err)
		return nil, false
	}
	return &req, true
}

// promptFromUpload extracts the PDF text and appends the optional requirements.
// Paper text beyond the prompt limit is cut off.
func (h *AgentHandler) promptFromUpload(c *gin.Context) (string, error) {
	if h.maxUploadBytes > 0 {
		// room for the other form fields
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+1<<20)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			return "", errUploadTooLarge
		}
		return "", errMissingFile
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return "", errUploadTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}

	text, err := extract.PDF(content)
	if err != nil {
		h.logger.Warn("pdf extraction failed",
			zap.Error(err),
			zap.String("filename", fileHeader.Filename),
			zap.Int64("size", fileHeader.Size),
		)
		return "", errUnreadablePDF
	}

	requirements := strings.TrimSpace(c.PostForm("prompt"))
	suffix := ""
	if requirements != "" {
		suffix = "\n\nAnalysis requirements:\n" + requirements
	}
	const prefix = "Paper text:\n"

	if h.maxPromptLength > 0 {
		if len(prefix)+len(suffix) >= h.maxPromptLength {
			return "", models.ErrPromptTooLong
		}
		if budget := h.maxPromptLength - len(prefix) - len(suffix); len(text) > budget {
			h.logger.Info("truncating extracted paper text",
				zap.Int("extracted_chars", len(text)),
				zap.Int("kept_chars", budget),
			)
			text = strings.ToValidUTF8(text[:budget], "")
		}
	}

	return prefix + text + suffix, nil
}
