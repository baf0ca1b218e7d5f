package manuscript

// Document is the analyzed form of a manuscript. It is built once per
// submission and not mutated afterwards.
type Document struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`

	// Chapters own their sections and content blocks; Sections and
	// Paragraphs are also kept flat, in stream order, for consumers that
	// do not care about nesting. The duplication is intentional.
	Chapters   []*Chapter   `json:"chapters"`
	Sections   []*Section   `json:"sections"`
	Paragraphs []*Paragraph `json:"paragraphs"`
	Citations  []*Citation  `json:"citations"`

	WordCount int `json:"word_count"`
	CharCount int `json:"char_count"`
}

// Metadata carries the book-level fields supplied alongside the text.
type Metadata struct {
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// Chapter is a top-level division detected from a heading line.
type Chapter struct {
	Title    string     `json:"title"`
	Line     int        `json:"line_number"`
	Sections []*Section `json:"sections"`
	Blocks   []Block    `json:"content_blocks,omitempty"`
}

// Section is a sub-division. Chapter is a weak reference by title: titles
// are not guaranteed unique, so consumers needing identity should use the
// origin line instead.
type Section struct {
	Title   string `json:"title"`
	Line    int    `json:"line_number"`
	Chapter string `json:"chapter,omitempty"`
}

// Paragraph is a run of non-blank lines joined with single spaces.
// Line is the index of the blank line that closed the paragraph, or -1
// when it was closed by end of input.
type Paragraph struct {
	Text    string `json:"text"`
	Chapter string `json:"chapter,omitempty"`
	Section string `json:"section,omitempty"`
	Line    int    `json:"line_number"`
}

// Citation is a quoted span found inside a body line.
type Citation struct {
	Text    string `json:"text"`
	Line    int    `json:"line_number"`
	Chapter string `json:"chapter,omitempty"`
}

// BlockType discriminates chapter content blocks.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockTool      BlockType = "tool"
)

// Block is one unit of chapter content in stream order. Paragraph blocks
// carry Text; tool blocks are opaque atomic units (a titled list of items)
// that the layout engine must never split across pages.
type Block struct {
	Type  BlockType `json:"type"`
	Text  string    `json:"text,omitempty"`
	Title string    `json:"title,omitempty"`
	Items []string  `json:"content,omitempty"`
}
