package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"strings"

	"booklayout/internal/layout"
	"booklayout/internal/manuscript"
)

// RenderEPUB serializes an analyzed manuscript to EPUB 3 bytes. Chapters
// are rebuilt from the flat paragraph list grouped by chapter title, which
// keeps paragraphs written before the first heading in a front chapter.
func RenderEPUB(doc *manuscript.Document, cfg layout.Config) ([]byte, error) {
	title := doc.Metadata.Title
	if title == "" {
		title = "Untitled Book"
	}
	author := doc.Metadata.Author
	if author == "" {
		author = "Unknown Author"
	}

	chapters := groupChapters(doc)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	// The mimetype entry must come first and be stored uncompressed.
	mt, err := w.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return nil, fmt.Errorf("epub mimetype: %w", err)
	}
	if _, err := mt.Write([]byte("application/epub+zip")); err != nil {
		return nil, fmt.Errorf("epub mimetype: %w", err)
	}

	files := map[string]string{
		"META-INF/container.xml": containerXML,
		"OEBPS/content.opf":      contentOPF(title, author, chapters),
		"OEBPS/nav.xhtml":        navXHTML(title, chapters),
		"OEBPS/style.css":        styleCSS(cfg),
		"OEBPS/cover.xhtml":      coverXHTML(title, author),
	}
	for i, ch := range chapters {
		files[fmt.Sprintf("OEBPS/chapter-%d.xhtml", i+1)] = chapterXHTML(ch)
	}

	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("epub entry %s: %w", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			return nil, fmt.Errorf("epub entry %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("epub close: %w", err)
	}
	return buf.Bytes(), nil
}

type epubChapter struct {
	Title      string
	Paragraphs []string
}

// groupChapters walks paragraphs in stream order and opens a new chapter
// whenever the chapter tag changes. Untagged leading paragraphs become an
// introduction chapter.
func groupChapters(doc *manuscript.Document) []epubChapter {
	var chapters []epubChapter
	current := ""
	var body []string

	flush := func() {
		if len(body) == 0 {
			return
		}
		title := current
		if title == "" {
			title = "Introduction"
		}
		chapters = append(chapters, epubChapter{Title: title, Paragraphs: body})
		body = nil
	}

	for _, para := range doc.Paragraphs {
		if para.Chapter != current {
			flush()
			current = para.Chapter
		}
		body = append(body, para.Text)
	}
	flush()

	return chapters
}

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

func contentOPF(title, author string, chapters []epubChapter) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="bookid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:identifier id="bookid">urn:booklayout:` + html.EscapeString(title) + `</dc:identifier>
    <dc:title>` + html.EscapeString(title) + `</dc:title>
    <dc:creator>` + html.EscapeString(author) + `</dc:creator>
    <dc:language>en</dc:language>
  </metadata>
  <manifest>
    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
    <item id="css" href="style.css" media-type="text/css"/>
    <item id="cover" href="cover.xhtml" media-type="application/xhtml+xml"/>
`)
	for i := range chapters {
		fmt.Fprintf(&b, `    <item id="ch%d" href="chapter-%d.xhtml" media-type="application/xhtml+xml"/>`+"\n", i+1, i+1)
	}
	b.WriteString(`  </manifest>
  <spine>
    <itemref idref="cover"/>
    <itemref idref="nav"/>
`)
	for i := range chapters {
		fmt.Fprintf(&b, `    <itemref idref="ch%d"/>`+"\n", i+1)
	}
	b.WriteString(`  </spine>
</package>
`)
	return b.String()
}

func navXHTML(title string, chapters []epubChapter) string {
	var b strings.Builder
	b.WriteString(xhtmlHead(title))
	b.WriteString(`<nav epub:type="toc"><h1>Table of Contents</h1><ol>` + "\n")
	for i, ch := range chapters {
		fmt.Fprintf(&b, `<li><a href="chapter-%d.xhtml">%s</a></li>`+"\n", i+1, html.EscapeString(ch.Title))
	}
	b.WriteString("</ol></nav></body></html>\n")
	return b.String()
}

func coverXHTML(title, author string) string {
	var b strings.Builder
	b.WriteString(xhtmlHead(title))
	b.WriteString(`<div class="cover"><h1 class="cover-title">` + html.EscapeString(title) + `</h1>`)
	b.WriteString(`<p class="cover-author">by ` + html.EscapeString(author) + `</p></div></body></html>` + "\n")
	return b.String()
}

func chapterXHTML(ch epubChapter) string {
	var b strings.Builder
	b.WriteString(xhtmlHead(ch.Title))
	b.WriteString("<h1>" + html.EscapeString(ch.Title) + "</h1>\n")
	for i, para := range ch.Paragraphs {
		class := ""
		if i == 0 {
			class = ` class="first"`
		}
		b.WriteString("<p" + class + ">" + html.EscapeString(para) + "</p>\n")
	}
	b.WriteString("</body></html>\n")
	return b.String()
}

func xhtmlHead(title string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>` + html.EscapeString(title) + `</title>
<link rel="stylesheet" type="text/css" href="style.css"/></head>
<body>
`
}

func styleCSS(cfg layout.Config) string {
	return fmt.Sprintf(`body {
  font-family: %s, serif;
  font-size: %gpt;
  line-height: %g;
  color: %s;
  background-color: %s;
  margin: 0;
  padding: 1em;
}
h1 { font-size: 1.8em; color: %s; page-break-before: always; }
p { text-align: justify; margin-bottom: 0.5em; text-indent: 1.5em; }
p.first { text-indent: 0; }
.cover { text-align: center; page-break-after: always; }
.cover-title { font-size: 2.5em; color: %s; margin-top: 2em; }
.cover-author { font-size: 1.2em; margin-top: 3em; }
`, cfg.FontFamily, cfg.FontSize, cfg.LineHeight, cfg.PrimaryColor,
		cfg.BackgroundColor, cfg.AccentColor, cfg.AccentColor)
}
