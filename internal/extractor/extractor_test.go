package extractor

import (
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
	}{
		{"book.txt", "*extractor.TextExtractor"},
		{"book.md", "*extractor.MarkdownExtractor"},
		{"book.markdown", "*extractor.MarkdownExtractor"},
		{"book.html", "*extractor.HTMLExtractor"},
		{"book.HTM", "*extractor.HTMLExtractor"},
		{"book.pdf", "*extractor.PDFExtractor"},
		{"book.docx", "*extractor.DOCXExtractor"},
		{"book.xlsx", "*extractor.XLSXExtractor"},
	}
	for _, tt := range tests {
		ex, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("ForFile(%q): %v", tt.filename, err)
			continue
		}
		if got := typeName(ex); got != tt.wantType {
			t.Errorf("ForFile(%q) = %s, want %s", tt.filename, got, tt.wantType)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *TextExtractor:
		return "*extractor.TextExtractor"
	case *MarkdownExtractor:
		return "*extractor.MarkdownExtractor"
	case *HTMLExtractor:
		return "*extractor.HTMLExtractor"
	case *PDFExtractor:
		return "*extractor.PDFExtractor"
	case *DOCXExtractor:
		return "*extractor.DOCXExtractor"
	case *XLSXExtractor:
		return "*extractor.XLSXExtractor"
	default:
		return "unknown"
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("virus.exe"); err == nil {
		t.Error("expected error for .exe")
	}
	if _, err := ForFile("noext"); err == nil {
		t.Error("expected error for missing extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("Book.TXT") {
		t.Error("extension check should be case-insensitive")
	}
	if IsSupportedExtension("book.exe") {
		t.Error(".exe should not be supported")
	}
}

func TestTextExtractor(t *testing.T) {
	content := "CHAPTER 1\n\nSome text."
	got, err := (&TextExtractor{}).Extract(strings.NewReader(content), "book.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("expected passthrough, got %q", got)
	}
}
