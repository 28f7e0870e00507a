package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/prefeitura-rio/app-research-agent/internal/models"
)

// StripMarkdown removes all markdown formatting from text and returns plain text
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	// Parse markdown to AST
	doc := markdown.Parse([]byte(text), nil)

	// Extract plain text from AST
	var buf bytes.Buffer
	extractText(doc, &buf)

	// Clean up extra whitespace
	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n") // Remove triple newlines

	return result
}

// RenderHTML renders a markdown report to a safe HTML fragment
func RenderHTML(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse([]byte(text))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML | html.Safelink | html.NofollowLinks | html.HrefTargetBlank,
	})

	return strings.TrimSpace(string(markdown.Render(doc, renderer)))
}

// FormatSearchResults renders papers as the numbered markdown list shown in the chat UI
func FormatSearchResults(results []models.SearchResult) string {
	items := make([]string, 0, len(results))
	for i, paper := range results {
		var b strings.Builder

		fmt.Fprintf(&b, "%d. **%s**\n\n", i+1, orDefault(paper.Title, "Untitled"))
		fmt.Fprintf(&b, "- **Authors:** %s\n", orDefault(strings.Join(paper.Authors, ", "), "N/A"))
		published := "N/A"
		if !paper.Published.IsZero() {
			published = paper.Published.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "- **Published:** %s\n", published)
		fmt.Fprintf(&b, "- **Categories:** %s\n", orDefault(strings.Join(paper.Categories, ", "), "N/A"))
		fmt.Fprintf(&b, "- **Paper URL:** %s\n", markdownLink(paper.EntryID))
		fmt.Fprintf(&b, "- **PDF URL:** %s\n", markdownLink(paper.PDFURL))
		if paper.DOI != "" {
			fmt.Fprintf(&b, "- **DOI:** %s\n", paper.DOI)
		}
		fmt.Fprintf(&b, "\n**Abstract:**\n%s\n", strings.Join(strings.Fields(paper.Summary), " "))

		items = append(items, b.String())
	}
	return strings.Join(items, "\n")
}

func markdownLink(url string) string {
	if url == "" {
		return "N/A"
	}
	return fmt.Sprintf("[%s](%s)", url, url)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// extractText walks the AST and extracts text content
func extractText(node ast.Node, buf *bytes.Buffer) {
	// Handle leaf nodes
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock:
		// Skip HTML blocks entirely
		return

	case *ast.HTMLSpan:
		// Skip HTML spans
		return
	}

	// Handle container nodes
	container := node.AsContainer()
	if container == nil {
		return
	}

	// Special handling for specific node types
	switch node.(type) {
	case *ast.ListItem:
		buf.WriteString("• ")
	}

	// Process children
	for _, child := range container.Children {
		extractText(child, buf)
	}

	// Add trailing formatting based on node type
	switch node.(type) {
	case *ast.Paragraph:
		buf.WriteString("\n\n")
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List:
		buf.WriteString("\n")
	case *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
