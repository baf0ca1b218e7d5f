package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze_ChaptersSectionsCitations(t *testing.T) {
	input := "CAPÍTULO 1: Intro\n\nFirst paragraph.\n\nSEÇÃO 1.1: Sub\n\nSecond paragraph with a \"quoted term\"."
	doc := Analyze(input)

	if len(doc.Chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(doc.Chapters))
	}
	if doc.Chapters[0].Title != "CAPÍTULO 1: Intro" {
		t.Errorf("unexpected chapter title %q", doc.Chapters[0].Title)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Chapter != "CAPÍTULO 1: Intro" {
		t.Errorf("expected section attached to chapter, got %q", doc.Sections[0].Chapter)
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}

	first := doc.Paragraphs[0]
	if first.Chapter != "CAPÍTULO 1: Intro" || first.Section != "" {
		t.Errorf("first paragraph tags: chapter=%q section=%q", first.Chapter, first.Section)
	}
	second := doc.Paragraphs[1]
	if second.Chapter != "CAPÍTULO 1: Intro" || second.Section != "SEÇÃO 1.1: Sub" {
		t.Errorf("second paragraph tags: chapter=%q section=%q", second.Chapter, second.Section)
	}

	if len(doc.Citations) != 1 {
		t.Fatalf("expected 1 citation, got %d", len(doc.Citations))
	}
	if doc.Citations[0].Text != "quoted term" {
		t.Errorf("expected citation %q, got %q", "quoted term", doc.Citations[0].Text)
	}
	if doc.Citations[0].Chapter != "CAPÍTULO 1: Intro" {
		t.Errorf("expected citation tagged to chapter, got %q", doc.Citations[0].Chapter)
	}
}

func TestAnalyze_EnglishHeadingForms(t *testing.T) {
	input := "CHAPTER 1\n\ntext\n\nSECTION 2\n\nmore\n\nPART 3\n\nend"
	doc := Analyze(input)
	if len(doc.Chapters) != 2 {
		t.Fatalf("expected 2 chapters (CHAPTER, PART), got %d", len(doc.Chapters))
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
}

func TestAnalyze_MarkdownHeadings(t *testing.T) {
	input := "# Book One\n\nintro text\n\n## Part Two\n\nbody\n\n### Detail\n\nmore body"
	doc := Analyze(input)
	if len(doc.Chapters) != 2 {
		t.Fatalf("expected 2 chapters from #/## headings, got %d", len(doc.Chapters))
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section from ### heading, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Title != "### Detail" {
		t.Errorf("expected full heading line kept as title, got %q", doc.Sections[0].Title)
	}
}

func TestAnalyze_NoStructureBecomesPlainParagraphs(t *testing.T) {
	input := "Just some text.\nMore of it.\n\nAnother block."
	doc := Analyze(input)

	if len(doc.Chapters) != 0 || len(doc.Sections) != 0 {
		t.Fatalf("expected no structure, got %d chapters %d sections", len(doc.Chapters), len(doc.Sections))
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].Text != "Just some text. More of it." {
		t.Errorf("expected lines joined with single spaces, got %q", doc.Paragraphs[0].Text)
	}
	if doc.Paragraphs[0].Chapter != "" || doc.Paragraphs[0].Section != "" {
		t.Errorf("expected untagged paragraph, got chapter=%q section=%q",
			doc.Paragraphs[0].Chapter, doc.Paragraphs[0].Section)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	doc := Analyze("")
	if len(doc.Chapters) != 0 || len(doc.Paragraphs) != 0 || len(doc.Citations) != 0 {
		t.Errorf("expected empty document, got %d/%d/%d",
			len(doc.Chapters), len(doc.Paragraphs), len(doc.Citations))
	}
	if doc.WordCount != 0 || doc.CharCount != 0 {
		t.Errorf("expected zero counts, got words=%d chars=%d", doc.WordCount, doc.CharCount)
	}
}

func TestAnalyze_SectionOutsideChapter(t *testing.T) {
	input := "SECTION 1\n\nbody text"
	doc := Analyze(input)
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Chapter != "" {
		t.Errorf("expected orphan section, got chapter %q", doc.Sections[0].Chapter)
	}
}

func TestAnalyze_HeadingLineIsNotParagraphContent(t *testing.T) {
	input := "Intro line.\nCHAPTER 1\nBody line."
	doc := Analyze(input)

	// No blank line anywhere: a single paragraph accumulates across the
	// heading, which does not contribute its own text.
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(doc.Paragraphs))
	}
	if strings.Contains(doc.Paragraphs[0].Text, "CHAPTER") {
		t.Errorf("heading leaked into paragraph text: %q", doc.Paragraphs[0].Text)
	}
	if doc.Paragraphs[0].Text != "Intro line. Body line." {
		t.Errorf("unexpected paragraph text %q", doc.Paragraphs[0].Text)
	}
}

func TestAnalyze_CitationLineStillJoinsParagraph(t *testing.T) {
	input := "He said \"hello there\" and left."
	doc := Analyze(input)

	if len(doc.Citations) != 1 || doc.Citations[0].Text != "hello there" {
		t.Fatalf("expected citation %q, got %+v", "hello there", doc.Citations)
	}
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].Text != "He said \"hello there\" and left." {
		t.Errorf("citation scan consumed the line: %q", doc.Paragraphs[0].Text)
	}
}

func TestAnalyze_MultipleCitationsOnOneLine(t *testing.T) {
	input := "Both 'first term' and 'second term' matter."
	doc := Analyze(input)
	if len(doc.Citations) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(doc.Citations))
	}
	if doc.Citations[0].Text != "first term" || doc.Citations[1].Text != "second term" {
		t.Errorf("unexpected citations %q, %q", doc.Citations[0].Text, doc.Citations[1].Text)
	}
}

func TestAnalyze_OriginLines(t *testing.T) {
	input := "CHAPTER 1\n\nfirst\n\nlast"
	doc := Analyze(input)

	if doc.Chapters[0].Line != 0 {
		t.Errorf("expected chapter at line 0, got %d", doc.Chapters[0].Line)
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	// "first" is closed by the blank line at index 3.
	if doc.Paragraphs[0].Line != 3 {
		t.Errorf("expected terminator line 3, got %d", doc.Paragraphs[0].Line)
	}
	// "last" is closed by end of input.
	if doc.Paragraphs[1].Line != -1 {
		t.Errorf("expected -1 for EOF-closed paragraph, got %d", doc.Paragraphs[1].Line)
	}
}

func TestAnalyze_ChapterContentBlocks(t *testing.T) {
	input := "CHAPTER 1\n\npara one\n\npara two\n\nCHAPTER 2\n\npara three"
	doc := Analyze(input)

	if len(doc.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(doc.Chapters))
	}
	if len(doc.Chapters[0].Blocks) != 2 {
		t.Fatalf("expected 2 blocks in chapter 1, got %d", len(doc.Chapters[0].Blocks))
	}
	if len(doc.Chapters[1].Blocks) != 1 {
		t.Fatalf("expected 1 block in chapter 2, got %d", len(doc.Chapters[1].Blocks))
	}
	if doc.Chapters[0].Blocks[0].Text != "para one" {
		t.Errorf("unexpected block text %q", doc.Chapters[0].Blocks[0].Text)
	}
}

func TestAnalyze_WordAndCharCounts(t *testing.T) {
	input := "Olá mundo\n\ntrês palavras aqui"
	doc := Analyze(input)
	if doc.WordCount != 5 {
		t.Errorf("expected 5 words, got %d", doc.WordCount)
	}
	// Rune count, not byte count.
	want := len([]rune(input))
	if doc.CharCount != want {
		t.Errorf("expected %d chars, got %d", want, doc.CharCount)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	input := "CHAPTER 1\n\nSome text with a \"quote\".\n\nSECTION 2\n\nMore text."
	a := Analyze(input)
	b := Analyze(input)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical documents from identical input")
	}
}
