package models

import "strings"

// Mode selects the pipeline that processes a prompt
type Mode string

const (
	ModeAutoAgent      Mode = "auto_agent"
	ModeWebSearch      Mode = "web_search"
	ModeDBQuery        Mode = "db_query"
	ModeQA             Mode = "qa_mode"
	ModeFutureAnalysis Mode = "future_analysis"
)

// AllModes lists every mode the chat UI can select, in sidebar order
var AllModes = []Mode{
	ModeAutoAgent,
	ModeWebSearch,
	ModeDBQuery,
	ModeQA,
	ModeFutureAnalysis,
}

// modeAliases maps UI labels and endpoint slugs to modes
var modeAliases = map[string]Mode{
	"auto_agent":            ModeAutoAgent,
	"web_search":            ModeWebSearch,
	"db_query":              ModeDBQuery,
	"qa_mode":               ModeQA,
	"qa":                    ModeQA,
	"future_analysis":       ModeFutureAnalysis,
	"future_works/analysis": ModeFutureAnalysis,
}

// ParseMode accepts canonical names, UPPER_CASE, kebab-case and the UI labels
// ("Web Search", "Future works/analysis").
func ParseMode(s string) (Mode, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	mode, ok := modeAliases[key]
	return mode, ok
}

// IsValid reports whether m is one of the known modes
func (m Mode) IsValid() bool {
	switch m {
	case ModeAutoAgent, ModeWebSearch, ModeDBQuery, ModeQA, ModeFutureAnalysis:
		return true
	}
	return false
}

// IsImplemented reports whether the mode has a real pipeline behind it
func (m Mode) IsImplemented() bool {
	return m == ModeWebSearch || m == ModeFutureAnalysis
}

// Label returns the name shown in the chat sidebar
func (m Mode) Label() string {
	switch m {
	case ModeAutoAgent:
		return "Auto Agent"
	case ModeWebSearch:
		return "Web Search"
	case ModeDBQuery:
		return "DB Query"
	case ModeQA:
		return "QA Mode"
	case ModeFutureAnalysis:
		return "Future works/analysis"
	}
	return string(m)
}
