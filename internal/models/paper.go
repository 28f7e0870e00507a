package models

import "time"

// SearchResult is one paper returned by the search provider.
// Values are built once per request and never modified afterwards.
type SearchResult struct {
	EntryID         string     `json:"entry_id" example:"http://arxiv.org/abs/2301.07041v1"`
	Title           string     `json:"title" example:"Electron learning in neural networks"`
	Authors         []string   `json:"authors"`
	Summary         string     `json:"summary"`
	Published       time.Time  `json:"published"`
	Updated         *time.Time `json:"updated,omitempty"`
	Categories      []string   `json:"categories"`
	PrimaryCategory string     `json:"primary_category,omitempty" example:"cs.LG"`
	PDFURL          string     `json:"pdf_url,omitempty" example:"http://arxiv.org/pdf/2301.07041v1"`
	DOI             string     `json:"doi,omitempty"`
	Comment         string     `json:"comment,omitempty"`
	JournalRef      string     `json:"journal_ref,omitempty"`
}

// AnalysisReport is the markdown produced by the LLM for a future-analysis prompt
type AnalysisReport struct {
	Text     string `json:"text"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}
