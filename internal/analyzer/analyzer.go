package analyzer

import (
	"strings"
	"unicode/utf8"

	"booklayout/internal/manuscript"
)

// Analyze recovers chapter/section/paragraph/citation structure from plain
// text. Line breaks are the only structural signal besides pattern-matched
// headings. It never fails: text with no recognizable structure becomes a
// flat list of untagged paragraphs.
func Analyze(content string) *manuscript.Document {
	doc := &manuscript.Document{
		Content:   content,
		WordCount: len(strings.Fields(content)),
		CharCount: utf8.RuneCountInString(content),
	}

	lines := strings.Split(content, "\n")

	var (
		currentChapter *manuscript.Chapter
		currentSection *manuscript.Section
		buffer         []string
	)

	flush := func(line int) {
		if len(buffer) == 0 {
			return
		}
		para := &manuscript.Paragraph{
			Text: strings.Join(buffer, " "),
			Line: line,
		}
		if currentChapter != nil {
			para.Chapter = currentChapter.Title
			currentChapter.Blocks = append(currentChapter.Blocks, manuscript.Block{
				Type: manuscript.BlockParagraph,
				Text: para.Text,
			})
		}
		if currentSection != nil {
			para.Section = currentSection.Title
		}
		doc.Paragraphs = append(doc.Paragraphs, para)
		buffer = buffer[:0]
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" {
			flush(i)
			continue
		}

		if matchesAny(chapterPatterns, line) {
			currentChapter = &manuscript.Chapter{Title: line, Line: i}
			doc.Chapters = append(doc.Chapters, currentChapter)
			continue
		}

		if matchesAny(sectionPatterns, line) {
			sec := &manuscript.Section{Title: line, Line: i}
			if currentChapter != nil {
				sec.Chapter = currentChapter.Title
				currentChapter.Sections = append(currentChapter.Sections, sec)
			}
			doc.Sections = append(doc.Sections, sec)
			currentSection = sec
			continue
		}

		// Citation scanning does not consume the line: it still
		// contributes to the paragraph buffer below.
		if strings.ContainsAny(line, `"'`) {
			for _, m := range citationPattern.FindAllStringSubmatch(line, -1) {
				cit := &manuscript.Citation{Text: m[1], Line: i}
				if currentChapter != nil {
					cit.Chapter = currentChapter.Title
				}
				doc.Citations = append(doc.Citations, cit)
			}
		}

		buffer = append(buffer, line)
	}

	// A paragraph closed by end of input carries no terminator line.
	flush(-1)

	return doc
}
