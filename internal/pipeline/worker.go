package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"booklayout/internal/analyzer"
	"booklayout/internal/extractor"
	"booklayout/internal/manuscript"
	"booklayout/internal/store"
)

// Worker processes a single manuscript job: extract text, analyze
// structure, store the document.
type Worker struct {
	docs *store.Store
	log  *slog.Logger

	pdfFallback bool
}

func NewWorker(docs *store.Store, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		docs:        docs,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Extract text from the uploaded file.
	job.SetStatus(StatusExtracting, "extracting")
	ex, err := extractor.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	if pdf, ok := ex.(*extractor.PDFExtractor); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}

	content, err := ex.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	job.SetContentHash(ContentHashHex([]byte(content)))

	select {
	case <-ctx.Done():
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	default:
	}

	// Phase 2: Structure analysis. Never fails: worst case the whole
	// text becomes a flat paragraph list.
	job.SetStatus(StatusAnalyzing, "analyzing")
	doc := analyzer.Analyze(content)
	doc.Metadata = manuscript.Metadata{Title: job.Title, Author: job.Author}

	// Phase 3: Store the analyzed document for preview/render calls.
	w.docs.Put(job.DocID, doc)

	job.SetSummary(Summary{
		WordCount:  doc.WordCount,
		CharCount:  doc.CharCount,
		Chapters:   len(doc.Chapters),
		Sections:   len(doc.Sections),
		Paragraphs: len(doc.Paragraphs),
		Citations:  len(doc.Citations),
	})
	job.SetStatus(StatusCompleted, "done")

	log.Info("manuscript processed",
		"chapters", len(doc.Chapters),
		"paragraphs", len(doc.Paragraphs),
		"words", doc.WordCount,
	)
}
