package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// buildPDF writes a single-page PDF showing text in Helvetica, with a valid xref table
func buildPDF(text string) []byte {
	stream := fmt.Sprintf("BT /F1 24 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestPDF(t *testing.T) {
	text, err := PDF(buildPDF("Electron Learning"))
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if !strings.Contains(text, "Electron Learning") {
		t.Errorf("PDF() = %q, want it to contain %q", text, "Electron Learning")
	}
}

func TestPDFRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"plain text", []byte("this is not a pdf")},
		{"truncated", buildPDF("x")[:40]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PDF(tt.input); err == nil {
				t.Errorf("PDF(%q) expected error", tt.name)
			}
		})
	}
}

func TestPDFWithoutText(t *testing.T) {
	_, err := PDF(buildPDF(""))
	if !errors.Is(err, ErrNoText) {
		t.Errorf("PDF() error = %v, want ErrNoText", err)
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"nul bytes", "a\x00b", "ab"},
		{"controls dropped", "a\x01\x02b\x7f", "ab"},
		{"whitespace kept", "line one\n\tline two\r\n", "line one\n\tline two"},
		{"unicode kept", "  Schrödinger  ", "Schrödinger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.expected {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
