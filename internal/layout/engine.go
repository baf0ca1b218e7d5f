package layout

import (
	"fmt"
	"strconv"

	"booklayout/internal/manuscript"
)

// Fixed line cost of a chapter heading at 2.5x the base font.
const chapterTitleLines = 5

// Fixed subtitle printed on the cover page.
const coverSubtitle = "Automatically Typeset"

const (
	defaultTitle  = "Untitled Book"
	defaultAuthor = "Unknown Author"
)

// Layout paginates an analyzed document against a merged config. It is
// deterministic, does no I/O, and never fails on a well-typed document:
// degenerate geometry is absorbed by the wrap floors.
func Layout(doc *manuscript.Document, cfg Config) *Result {
	usableWidth := cfg.PageWidth - cfg.MarginLeft - cfg.MarginRight
	usableHeight := cfg.PageHeight - cfg.MarginTop - cfg.MarginBottom

	pages := []*Page{
		coverPage(cfg, doc.Metadata),
		titlePage(cfg, doc.Metadata),
	}
	pages = append(pages, tocPage(doc, cfg, len(pages)+1))
	pages = distribute(doc, cfg, usableWidth, usableHeight, pages)

	return &Result{
		Pages:      pages,
		TOC:        deriveTOC(doc),
		Index:      deriveIndex(doc),
		Config:     cfg,
		TotalPages: len(pages),
		Metadata: Stats{
			WordCount: doc.WordCount,
			CharCount: doc.CharCount,
		},
	}
}

// distribute flows chapter content onto fixed-capacity pages. Each chapter
// unconditionally starts a new page; paragraphs wrap and may span pages
// line by line; tool blocks are placed atomically.
func distribute(doc *manuscript.Document, cfg Config, width, height float64, pages []*Page) []*Page {
	budget := linesPerPage(height, cfg.FontSize, cfg.LineHeight)

	var current *Page
	used := 0

	for _, chapter := range doc.Chapters {
		if current != nil {
			pages = append(pages, current)
		}
		current = contentPage(cfg, len(pages)+1)
		used = 0

		current.Content = append(current.Content, ContentItem{
			Type:       ItemChapterTitle,
			Text:       chapter.Title,
			FontSize:   cfg.FontSize * 2.5,
			FontFamily: cfg.FontFamily,
			Color:      cfg.PrimaryColor,
		})
		used += chapterTitleLines

		for _, block := range chapter.Blocks {
			if used >= budget {
				pages = append(pages, current)
				current = contentPage(cfg, len(pages)+1)
				used = 0
			}

			switch block.Type {
			case manuscript.BlockTool:
				// Estimated box height: two lines of framing plus one
				// line per item. Never split across pages.
				toolHeight := 2 + len(block.Items)
				if used+toolHeight > budget {
					pages = append(pages, current)
					current = contentPage(cfg, len(pages)+1)
					used = 0
				}
				data := block
				current.Content = append(current.Content, ContentItem{
					Type:       ItemToolBlock,
					Data:       &data,
					FontFamily: cfg.FontFamily,
					Color:      cfg.PrimaryColor,
				})
				used += toolHeight

			default:
				for _, line := range Wrap(block.Text, width, cfg.FontSize) {
					if used >= budget {
						pages = append(pages, current)
						current = contentPage(cfg, len(pages)+1)
						used = 0
					}
					current.Content = append(current.Content, ContentItem{
						Type:       ItemText,
						Text:       line,
						FontSize:   cfg.FontSize,
						FontFamily: cfg.FontFamily,
						Color:      cfg.PrimaryColor,
					})
					used++
				}
			}
		}
	}

	if current != nil {
		pages = append(pages, current)
	}

	return pages
}

func coverPage(cfg Config, meta manuscript.Metadata) *Page {
	title := meta.Title
	if title == "" {
		title = defaultTitle
	}
	return &Page{
		PageNumber: 1,
		Type:       PageCover,
		Content: []ContentItem{
			{
				Type:       ItemTitle,
				Text:       title,
				FontSize:   48,
				FontFamily: cfg.FontFamily,
				Color:      cfg.AccentColor,
				Alignment:  "center",
			},
			{
				Type:       ItemSubtitle,
				Text:       coverSubtitle,
				FontSize:   24,
				FontFamily: cfg.FontFamily,
				Color:      cfg.PrimaryColor,
				Alignment:  "center",
			},
		},
		BackgroundColor: cfg.BackgroundColor,
	}
}

func titlePage(cfg Config, meta manuscript.Metadata) *Page {
	title := meta.Title
	if title == "" {
		title = defaultTitle
	}
	author := meta.Author
	if author == "" {
		author = defaultAuthor
	}
	return &Page{
		PageNumber: 2,
		Type:       PageTitlePage,
		Content: []ContentItem{
			{
				Type:       ItemText,
				Text:       title,
				FontSize:   32,
				FontFamily: cfg.FontFamily,
				Color:      cfg.PrimaryColor,
				Alignment:  "center",
			},
			{
				Type:       ItemText,
				Text:       author,
				FontSize:   16,
				FontFamily: cfg.FontFamily,
				Color:      cfg.PrimaryColor,
				Alignment:  "center",
			},
		},
		BackgroundColor: cfg.BackgroundColor,
	}
}

// tocPage lists every chapter (indent 0) and its sections (indent 1).
// Page numbers are not filled here: they are resolved by the renderer
// after final pagination.
func tocPage(doc *manuscript.Document, cfg Config, number int) *Page {
	page := &Page{
		PageNumber: number,
		Type:       PageTOC,
		Content: []ContentItem{
			{
				Type:       ItemHeading,
				Text:       "Table of Contents",
				FontSize:   24,
				FontFamily: cfg.FontFamily,
				Color:      cfg.AccentColor,
			},
		},
		BackgroundColor: cfg.BackgroundColor,
	}

	for _, chapter := range doc.Chapters {
		page.Content = append(page.Content, ContentItem{
			Type:       ItemTOCEntry,
			Text:       chapter.Title,
			FontSize:   12,
			FontFamily: cfg.FontFamily,
			Color:      cfg.PrimaryColor,
			Indent:     0,
		})
		for _, section := range chapter.Sections {
			page.Content = append(page.Content, ContentItem{
				Type:       ItemTOCEntry,
				Text:       section.Title,
				FontSize:   11,
				FontFamily: cfg.FontFamily,
				Color:      cfg.PrimaryColor,
				Indent:     1,
			})
		}
	}

	return page
}

func contentPage(cfg Config, number int) *Page {
	return &Page{
		PageNumber:      number,
		Type:            PageContent,
		Content:         []ContentItem{},
		BackgroundColor: cfg.BackgroundColor,
		Header:          fmt.Sprintf("Page %d", number),
		Footer:          strconv.Itoa(number),
	}
}

// deriveTOC builds the navigable table of contents from document structure,
// independent of the page-building pass.
func deriveTOC(doc *manuscript.Document) []TOCEntry {
	var toc []TOCEntry
	for _, chapter := range doc.Chapters {
		toc = append(toc, TOCEntry{Level: 1, Title: chapter.Title})
		for _, section := range chapter.Sections {
			toc = append(toc, TOCEntry{Level: 2, Title: section.Title})
		}
	}
	return toc
}

// deriveIndex collects one entry per citation, in stream order.
func deriveIndex(doc *manuscript.Document) []IndexEntry {
	var index []IndexEntry
	for _, citation := range doc.Citations {
		index = append(index, IndexEntry{Term: citation.Text, Type: "citation"})
	}
	return index
}
