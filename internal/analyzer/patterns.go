package analyzer

import "regexp"

// Heading detection is an ordered list of compiled patterns tried in
// sequence; the first match wins. Chapter patterns are always tried before
// section patterns, so a heading line is never scanned for citations.
var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(CAPÍTULO|CHAPTER|CAP\.?)\s+\d+`),
	regexp.MustCompile(`(?i)^(PARTE|PART)\s+\d+`),
	regexp.MustCompile(`^#{1,2}\s+.+`),
}

var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(SEÇÃO|SECTION|SEC\.?)\s+\d+`),
	regexp.MustCompile(`^#{3}\s+.+`),
}

// Quoted spans, single or double quotes, non-nested.
var citationPattern = regexp.MustCompile(`["']([^"']+)["']`)

func matchesAny(patterns []*regexp.Regexp, line string) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
