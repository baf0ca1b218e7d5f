package extractor

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. Headings are
// re-emitted with their hash prefix so downstream structure analysis sees
// the same levels the author wrote.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var out []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if title != "" {
				out = append(out, strings.Repeat("#", node.Level)+" "+title)
			}
		default:
			if t := blockText(n, src); t != "" {
				out = append(out, t)
			}
		}
	}

	return strings.Join(out, "\n\n"), nil
}

// blockText gets the text content of a goldmark AST node. Parsed inline
// children are preferred over raw source lines so markup characters do not
// leak through; leaf blocks without inline children (code fences, HTML
// blocks) fall back to their raw lines.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			nested := blockText(c, src)
			if nested != "" {
				if buf.Len() > 0 && c.Type() == ast.TypeBlock {
					buf.WriteByte('\n')
				}
				buf.WriteString(nested)
			}
		}
	}
	if buf.Len() == 0 && n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	return strings.TrimSpace(buf.String())
}
