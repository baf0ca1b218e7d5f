package layout

import "strings"

// mmToPt is the fixed millimeter-to-point conversion used throughout.
const mmToPt = 2.834645669

// Wrap breaks text into physical lines for the given column width (mm) and
// font size (pt) using a calibrated character-width heuristic, not real
// text shaping. Words are packed greedily and never reordered; a single
// word longer than the line capacity stays intact on its own line (no
// hyphenation — the renderer clips or wraps visually). Empty input yields
// zero lines.
func Wrap(text string, widthMM, fontSize float64) []string {
	// Defensive floors against degenerate configs.
	if widthMM < 10 {
		widthMM = 10
	}
	if fontSize < 6 {
		fontSize = 6
	}

	widthPt := widthMM * 2.83465

	// 0.6 * font size is a conservative average glyph width for serif faces.
	avgCharWidth := fontSize * 0.6
	if avgCharWidth <= 0 {
		avgCharWidth = 7.2 // 12pt equivalent
	}

	charsPerLine := int(widthPt / avgCharWidth)
	if charsPerLine < 20 {
		charsPerLine = 20
	}

	var lines []string
	var current []string
	currentLen := 0

	for _, word := range strings.Fields(text) {
		// Candidate length: existing words, one space per join, new word.
		lineLen := currentLen + len(current) + len(word)

		if lineLen > charsPerLine {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
			}
			current = []string{word}
			currentLen = len(word)
		} else {
			current = append(current, word)
			currentLen += len(word)
		}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return lines
}

// linesPerPage is the page's line-capacity budget, not a rendering
// guarantee: usable height in points divided by the leading.
func linesPerPage(heightMM, fontSize, lineHeight float64) int {
	heightPt := heightMM * mmToPt
	leading := fontSize * lineHeight
	n := int(heightPt / leading)
	// Even a degenerate page fits one line; a zero budget would stall the
	// distribution loop.
	if n < 1 {
		n = 1
	}
	return n
}
