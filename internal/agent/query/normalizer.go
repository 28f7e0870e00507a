package query

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/prefeitura-rio/app-research-agent/internal/agent/adapter"
	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// NormalizationTemperature keeps the rewrite close to deterministic
	NormalizationTemperature = 0.2

	// MaxQueryLength is the longest query line accepted from the model
	MaxQueryLength = 512
)

// SystemInstruction is sent with every normalization call
const SystemInstruction = `You convert research questions into arXiv API search queries.
Reply with ONE line containing only the query. No explanation, no quotes, no markdown.
Use field prefixes: ti: (title), abs: (abstract), au: (author), cat: (category), all: (all fields).
Combine terms with AND, OR and ANDNOT. Group alternatives with parentheses.
Example: "papers by Hinton about capsule networks" -> au:Hinton AND (ti:capsule OR abs:capsule)`

var (
	fieldPrefix  = regexp.MustCompile(`(?i)\b(ti|abs|au|cat|all|jr|co|rn|id):`)
	queryLabel   = regexp.MustCompile(`(?i)^(arxiv\s+)?(search\s+)?query\s*:\s*`)
	listMarker   = regexp.MustCompile(`^([-*•]|\d+[.)])\s+`)
	preambleHead = []string{"here is", "here's", "heres", "sure", "certainly", "okay", "ok,"}
)

// Normalizer rewrites free-form prompts into field-qualified arXiv queries
type Normalizer struct {
	provider adapter.CompletionProvider
}

// NewNormalizer creates a normalizer backed by provider
func NewNormalizer(provider adapter.CompletionProvider) *Normalizer {
	return &Normalizer{provider: provider}
}

// Normalize makes exactly one completion call and extracts the query from it.
// Provider errors are returned unchanged; unusable output is ErrNormalizationFailed.
func (n *Normalizer) Normalize(ctx context.Context, prompt string) (string, error) {
	if n.provider == nil {
		return "", fmt.Errorf("%w: no completion provider configured", models.ErrProviderUnavailable)
	}

	completion, err := n.provider.Complete(ctx, adapter.CompletionRequest{
		SystemInstruction: SystemInstruction,
		UserContent:       prompt,
		Temperature:       NormalizationTemperature,
	})
	if err != nil {
		return "", err
	}

	return ExtractQuery(completion.Text)
}

// ExtractQuery pulls a single query line out of raw model output
func ExtractQuery(raw string) (string, error) {
	lines := candidateLines(raw)
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: model returned no usable query", models.ErrNormalizationFailed)
	}

	chosen := lines[0]
	for _, line := range lines {
		if fieldPrefix.MatchString(line) {
			chosen = line
			break
		}
	}

	chosen = collapseSpace(RemoveAccents(chosen))
	if chosen == "" {
		return "", fmt.Errorf("%w: model returned no usable query", models.ErrNormalizationFailed)
	}
	if len(chosen) > MaxQueryLength {
		return "", fmt.Errorf("%w: query has %d chars, limit is %d", models.ErrNormalizationFailed, len(chosen), MaxQueryLength)
	}
	return chosen, nil
}

// candidateLines strips fences, preamble and labels, keeping non-empty lines in order
func candidateLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		if isPreamble(line) {
			continue
		}

		line = listMarker.ReplaceAllString(line, "")
		line = queryLabel.ReplaceAllString(line, "")
		line = unwrap(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// unwrap removes matching backticks or quotes around the whole line
func unwrap(line string) string {
	for len(line) >= 2 {
		first, last := line[0], line[len(line)-1]
		if first != last || !strings.ContainsRune("`\"'", rune(first)) {
			break
		}
		line = strings.TrimSpace(line[1 : len(line)-1])
	}
	return line
}

func isPreamble(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range preambleHead {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return strings.HasSuffix(line, ":")
}

// RemoveAccents folds diacritics ("Schrödinger" -> "Schrodinger")
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
