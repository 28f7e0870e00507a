package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text without markdown",
			input:    "This is plain text",
			expected: "This is plain text",
		},
		{
			name:     "bold text",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "italic text",
			input:    "This is *italic* text",
			expected: "This is italic text",
		},
		{
			name:     "escaped asterisk",
			input:    "This is a \\*literal asterisk\\* not emphasis",
			expected: "This is a *literal asterisk* not emphasis",
		},
		{
			name:     "escaped underscore",
			input:    "This is a \\_literal underscore\\_",
			expected: "This is a _literal underscore_",
		},
		{
			name:     "link",
			input:    "Visit [Google](https://google.com) for search",
			expected: "Visit Google for search",
		},
		{
			name:     "heading",
			input:    "# Main Title\n\nSome content",
			expected: "Main Title\n\nSome content",
		},
		{
			name:     "code inline",
			input:    "Use the `StripMarkdown` function",
			expected: "Use the StripMarkdown function",
		},
		{
			name:     "code block",
			input:    "```go\nfunc main() {}\n```",
			expected: "func main() {}",
		},
		{
			name:     "unordered list",
			input:    "- Item 1\n- Item 2\n- Item 3",
			expected: "• Item 1\n\n• Item 2\n\n• Item 3",
		},
		{
			name:     "mixed formatting",
			input:    "This has **bold**, *italic*, and [a link](http://example.com)",
			expected: "This has bold, italic, and a link",
		},
		{
			name:     "blockquote",
			input:    "> This is a quote\n> With multiple lines",
			expected: "This is a quote\nWith multiple lines",
		},
		{
			name:     "complex markdown with escaped chars",
			input:    "# Title\n\nThis is a \\*paper\\* with **formatting** and a [link](http://example.com).\n\n- Item 1\n- Item 2",
			expected: "Title\n\nThis is a *paper* with formatting and a link.\n\n• Item 1\n\n• Item 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "empty",
			input:    "  ",
			contains: nil,
		},
		{
			name:     "heading and list",
			input:    "## Future Research Directions\n\n- Scale to **larger** datasets\n- Study robustness",
			contains: []string{"<h2", "Future Research Directions</h2>", "<ul>", "<strong>larger</strong>", "<li>Study robustness</li>"},
		},
		{
			name:     "raw html is dropped",
			input:    "Report <script>alert(1)</script> body",
			contains: []string{"Report", "body"},
			excludes: []string{"<script>"},
		},
		{
			name:     "links open in a new tab",
			input:    "See [arXiv](https://arxiv.org)",
			contains: []string{`href="https://arxiv.org"`, `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderHTML(tt.input)
			if tt.contains == nil && result != "" {
				t.Errorf("RenderHTML(%q) = %q, want empty", tt.input, result)
			}
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("RenderHTML(%q) = %q, missing %q", tt.input, result, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(result, unwanted) {
					t.Errorf("RenderHTML(%q) = %q, should not contain %q", tt.input, result, unwanted)
				}
			}
		})
	}
}

func TestFormatSearchResults(t *testing.T) {
	results := []models.SearchResult{
		{
			EntryID:    "http://arxiv.org/abs/2101.00001v1",
			Title:      "Electron Learning",
			Authors:    []string{"Ada Lovelace", "Alan Turing"},
			Summary:    "We study\n  electrons.",
			Published:  time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC),
			Categories: []string{"cs.LG", "physics.ed-ph"},
			PDFURL:     "http://arxiv.org/pdf/2101.00001v1",
			DOI:        "10.1000/xyz",
		},
		{
			Title: "",
		},
	}

	out := FormatSearchResults(results)

	expectedFirst := "1. **Electron Learning**\n\n" +
		"- **Authors:** Ada Lovelace, Alan Turing\n" +
		"- **Published:** 2021-01-01\n" +
		"- **Categories:** cs.LG, physics.ed-ph\n" +
		"- **Paper URL:** [http://arxiv.org/abs/2101.00001v1](http://arxiv.org/abs/2101.00001v1)\n" +
		"- **PDF URL:** [http://arxiv.org/pdf/2101.00001v1](http://arxiv.org/pdf/2101.00001v1)\n" +
		"- **DOI:** 10.1000/xyz\n" +
		"\n**Abstract:**\nWe study electrons.\n"

	if !strings.HasPrefix(out, expectedFirst) {
		t.Errorf("FormatSearchResults() first item =\n%s\nwant prefix\n%s", out, expectedFirst)
	}
	if !strings.Contains(out, "2. **Untitled**") {
		t.Errorf("FormatSearchResults() missing placeholder title: %s", out)
	}
	if !strings.Contains(out, "- **Published:** N/A") || !strings.Contains(out, "- **PDF URL:** N/A") {
		t.Errorf("FormatSearchResults() missing N/A placeholders: %s", out)
	}
	if FormatSearchResults(nil) != "" {
		t.Errorf("FormatSearchResults(nil) should be empty")
	}
}

func BenchmarkStripMarkdown(b *testing.B) {
	input := `# Analysis of Electron Learning Dynamics

## 1. Key Findings and Contributions

- A **novel** training schedule for *sparse* models
- Results on [MNIST](http://example.com) and CIFAR-10

## 3. Future Research Directions

Extend the method to \*larger\* datasets and study robustness.`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StripMarkdown(input)
	}
}
