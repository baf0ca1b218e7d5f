package render

import (
	"testing"

	"booklayout/internal/layout"
	"booklayout/internal/manuscript"
)

func TestResolvePageNumbers(t *testing.T) {
	doc := &manuscript.Document{
		Chapters: []*manuscript.Chapter{
			{
				Title:    "CHAPTER 1",
				Sections: []*manuscript.Section{{Title: "SECTION 1.1"}},
			},
			{Title: "CHAPTER 2"},
		},
	}
	result := layout.Layout(doc, layout.DefaultConfig())

	ResolvePageNumbers(result)

	if len(result.TOC) != 3 {
		t.Fatalf("expected 3 toc entries, got %d", len(result.TOC))
	}
	if result.TOC[0].Page == nil || *result.TOC[0].Page != 4 {
		t.Errorf("chapter 1 page: %v", result.TOC[0].Page)
	}
	if result.TOC[2].Page == nil || *result.TOC[2].Page != 5 {
		t.Errorf("chapter 2 page: %v", result.TOC[2].Page)
	}
	// Section entries have no placed item and stay unresolved.
	if result.TOC[1].Page != nil {
		t.Errorf("section entry resolved unexpectedly: %d", *result.TOC[1].Page)
	}
}

func TestResolvePageNumbers_DuplicateChapterTitles(t *testing.T) {
	doc := &manuscript.Document{
		Chapters: []*manuscript.Chapter{
			{Title: "CHAPTER 1"},
			{Title: "CHAPTER 1"},
		},
	}
	result := layout.Layout(doc, layout.DefaultConfig())

	ResolvePageNumbers(result)

	// Each occurrence binds to its own page, in order.
	if result.TOC[0].Page == nil || *result.TOC[0].Page != 4 {
		t.Errorf("first occurrence: %v", result.TOC[0].Page)
	}
	if result.TOC[1].Page == nil || *result.TOC[1].Page != 5 {
		t.Errorf("second occurrence: %v", result.TOC[1].Page)
	}
}

func TestResolvePageNumbers_NoChapters(t *testing.T) {
	result := layout.Layout(&manuscript.Document{}, layout.DefaultConfig())
	ResolvePageNumbers(result)
	if len(result.TOC) != 0 {
		t.Errorf("expected empty toc, got %d entries", len(result.TOC))
	}
}
