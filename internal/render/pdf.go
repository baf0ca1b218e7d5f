package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"booklayout/internal/layout"
)

// RenderPDF serializes a layout result to PDF bytes. It runs the
// page-number resolution pass first, then draws every page's content items
// and appends ToC and citation-index back matter.
func RenderPDF(result *layout.Result) ([]byte, error) {
	ResolvePageNumbers(result)

	cfg := result.Config
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginRight)
	pdf.SetAutoPageBreak(true, cfg.MarginBottom)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	family := coreFont(cfg.FontFamily)

	for _, page := range result.Pages {
		pdf.AddPage()
		drawBackground(pdf, cfg, page.BackgroundColor)

		for _, item := range page.Content {
			drawItem(pdf, tr, family, cfg, item)
		}
	}

	drawBackMatter(pdf, tr, family, cfg, result)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func drawItem(pdf *gofpdf.Fpdf, tr func(string) string, family string, cfg layout.Config, item layout.ContentItem) {
	size := item.FontSize
	if size <= 0 {
		size = cfg.FontSize
	}
	setColor(pdf, item.Color, cfg.PrimaryColor)

	switch item.Type {
	case layout.ItemToolBlock:
		drawToolBlock(pdf, tr, family, cfg, item)
		return
	case layout.ItemTitle, layout.ItemChapterTitle, layout.ItemHeading:
		pdf.SetFont(family, "B", size)
	default:
		pdf.SetFont(family, "", size)
	}

	lineHeight := size * cfg.LineHeight * ptToMM
	align := "L"
	if item.Alignment == "center" {
		align = "C"
	}

	if item.Type == layout.ItemTOCEntry {
		pdf.SetX(cfg.MarginLeft + float64(item.Indent)*8)
	}
	pdf.CellFormat(0, lineHeight, tr(item.Text), "", 1, align, false, 0, "")
}

func drawToolBlock(pdf *gofpdf.Fpdf, tr func(string) string, family string, cfg layout.Config, item layout.ContentItem) {
	if item.Data == nil {
		return
	}
	lineHeight := cfg.FontSize * cfg.LineHeight * ptToMM

	pdf.SetFont(family, "B", cfg.FontSize)
	pdf.CellFormat(0, lineHeight, tr(item.Data.Title), "LTR", 1, "L", false, 0, "")

	pdf.SetFont(family, "", cfg.FontSize)
	for i, line := range item.Data.Items {
		border := "LR"
		if i == len(item.Data.Items)-1 {
			border = "LRB"
		}
		pdf.CellFormat(0, lineHeight, tr(line), border, 1, "L", false, 0, "")
	}
}

func drawBackMatter(pdf *gofpdf.Fpdf, tr func(string) string, family string, cfg layout.Config, result *layout.Result) {
	if len(result.TOC) > 0 {
		pdf.AddPage()
		drawBackground(pdf, cfg, cfg.BackgroundColor)
		setColor(pdf, cfg.AccentColor, cfg.PrimaryColor)
		pdf.SetFont(family, "B", 18)
		pdf.CellFormat(0, 12, tr("Table of Contents"), "", 1, "L", false, 0, "")

		setColor(pdf, cfg.PrimaryColor, cfg.PrimaryColor)
		for _, entry := range result.TOC {
			size := 11.0
			if entry.Level > 1 {
				size = 10
			}
			pdf.SetFont(family, "", size)
			pdf.SetX(cfg.MarginLeft + float64(entry.Level-1)*8)
			text := entry.Title
			if entry.Page != nil {
				text = fmt.Sprintf("%s  %d", text, *entry.Page)
			}
			pdf.CellFormat(0, 6, tr(text), "", 1, "L", false, 0, "")
		}
	}

	if len(result.Index) > 0 {
		pdf.AddPage()
		drawBackground(pdf, cfg, cfg.BackgroundColor)
		setColor(pdf, cfg.AccentColor, cfg.PrimaryColor)
		pdf.SetFont(family, "B", 18)
		pdf.CellFormat(0, 12, tr("Index"), "", 1, "L", false, 0, "")

		setColor(pdf, cfg.PrimaryColor, cfg.PrimaryColor)
		pdf.SetFont(family, "", cfg.FontSize)
		for _, entry := range result.Index {
			pdf.CellFormat(0, 6, tr(entry.Term), "", 1, "L", false, 0, "")
		}
	}
}

func drawBackground(pdf *gofpdf.Fpdf, cfg layout.Config, hex string) {
	r, g, b, ok := hexToRGB(hex)
	if !ok || (r == 255 && g == 255 && b == 255) {
		return
	}
	pdf.SetFillColor(r, g, b)
	pdf.Rect(0, 0, cfg.PageWidth, cfg.PageHeight, "F")
}

func setColor(pdf *gofpdf.Fpdf, hex, fallback string) {
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		r, g, b, ok = hexToRGB(fallback)
	}
	if !ok {
		r, g, b = 0, 0, 0
	}
	pdf.SetTextColor(r, g, b)
}

// ptToMM converts a point dimension to millimeters for gofpdf cells.
const ptToMM = 1 / 2.834645669

// coreFont maps a configured family onto the nearest PDF core font.
// Embedding arbitrary TTFs is the job of a full rendering service.
func coreFont(family string) string {
	switch strings.ToLower(family) {
	case "georgia", "times new roman", "times", "garamond", "palatino":
		return "Times"
	case "courier", "courier new", "consolas", "menlo":
		return "Courier"
	default:
		return "Helvetica"
	}
}

func hexToRGB(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}
