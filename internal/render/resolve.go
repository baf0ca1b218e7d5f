package render

import "booklayout/internal/layout"

// ResolvePageNumbers is the second pass of the two-phase layout contract:
// the engine emits ToC and index entries with nil pages, and the renderer
// fills in what the final pagination makes resolvable. Chapter entries are
// matched to the chapter-title items on content pages; section and citation
// entries have no placed item to match and stay nil.
func ResolvePageNumbers(result *layout.Result) {
	next := 0
	for _, page := range result.Pages {
		if page.Type != layout.PageContent {
			continue
		}
		for _, item := range page.Content {
			if item.Type != layout.ItemChapterTitle {
				continue
			}
			for i := next; i < len(result.TOC); i++ {
				entry := &result.TOC[i]
				if entry.Level == 1 && entry.Page == nil && entry.Title == item.Text {
					n := page.PageNumber
					entry.Page = &n
					next = i + 1
					break
				}
			}
		}
	}
}
