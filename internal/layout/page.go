package layout

import "booklayout/internal/manuscript"

// PageType distinguishes front matter from flowed content.
type PageType string

const (
	PageCover     PageType = "cover"
	PageTitlePage PageType = "title_page"
	PageTOC       PageType = "toc"
	PageContent   PageType = "content"
)

// ItemType tags a ContentItem for the renderer.
type ItemType string

const (
	ItemTitle        ItemType = "title"
	ItemSubtitle     ItemType = "subtitle"
	ItemText         ItemType = "text"
	ItemHeading      ItemType = "heading"
	ItemTOCEntry     ItemType = "toc_entry"
	ItemChapterTitle ItemType = "chapter_title"
	ItemToolBlock    ItemType = "tool_block"
)

// ContentItem is one renderable unit on a page. Tool blocks carry the whole
// opaque block in Data; everything else is styled text.
type ContentItem struct {
	Type       ItemType          `json:"type"`
	Text       string            `json:"text,omitempty"`
	FontSize   float64           `json:"font_size,omitempty"`
	FontFamily string            `json:"font_family,omitempty"`
	Color      string            `json:"color,omitempty"`
	Alignment  string            `json:"alignment,omitempty"`
	Indent     int               `json:"indent,omitempty"`
	Data       *manuscript.Block `json:"data,omitempty"`
}

// Page is one laid-out page. A page is sealed once the next page is opened;
// no page is mutated afterwards.
type Page struct {
	PageNumber      int           `json:"page_number"`
	Type            PageType      `json:"type"`
	Content         []ContentItem `json:"content"`
	BackgroundColor string        `json:"background_color"`
	Header          string        `json:"header,omitempty"`
	Footer          string        `json:"footer,omitempty"`
}

// TOCEntry is one table-of-contents line. Page stays nil until the
// renderer's page-number resolution pass fills it in.
type TOCEntry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  *int   `json:"page"`
}

// IndexEntry is one back-matter index line, page deferred like TOCEntry.
type IndexEntry struct {
	Term string `json:"term"`
	Type string `json:"type"`
	Page *int   `json:"page"`
}

// Stats echoes document-level counts into the layout payload.
type Stats struct {
	WordCount int `json:"word_count"`
	CharCount int `json:"char_count"`
}

// Result is the full paginated layout handed to renderers.
type Result struct {
	Pages      []*Page      `json:"pages"`
	TOC        []TOCEntry   `json:"table_of_contents"`
	Index      []IndexEntry `json:"index"`
	Config     Config       `json:"config"`
	TotalPages int          `json:"total_pages"`
	Metadata   Stats        `json:"metadata"`
}
