package extractor

import (
	"strings"
	"testing"
)

func TestMarkdownExtractor_HeadingsSurvive(t *testing.T) {
	src := "# Chapter One\n\nBody paragraph here.\n\n### A Section\n\nMore body."
	got, err := (&MarkdownExtractor{}).Extract(strings.NewReader(src), "book.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocks := strings.Split(got, "\n\n")
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d: %q", len(blocks), got)
	}
	if blocks[0] != "# Chapter One" {
		t.Errorf("heading lost its level: %q", blocks[0])
	}
	if blocks[2] != "### A Section" {
		t.Errorf("section heading: %q", blocks[2])
	}
	if blocks[1] != "Body paragraph here." {
		t.Errorf("paragraph: %q", blocks[1])
	}
}

func TestMarkdownExtractor_InlineFormattingStripped(t *testing.T) {
	src := "Some **bold** and *italic* and `code` text."
	got, err := (&MarkdownExtractor{}).Extract(strings.NewReader(src), "book.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(got, "*`") {
		t.Errorf("markup survived extraction: %q", got)
	}
	if !strings.Contains(got, "bold") || !strings.Contains(got, "italic") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestMarkdownExtractor_Empty(t *testing.T) {
	got, err := (&MarkdownExtractor{}).Extract(strings.NewReader(""), "book.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
