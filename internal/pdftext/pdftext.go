// Package pdftext extracts per-page plain text from PDF documents.
//
// Each input file yields two views of the same content: a Document holding
// the full concatenated text with inline [Page N] markers, and a flat list
// of PageRecords pairing every non-empty page with its source file and page
// number. The PageRecords are what the analyzer later scans to recover page
// citations for trade names.
package pdftext

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// PageRecord is one page's extracted text tagged with its source document
// name and 1-based page number. Pages with no extractable text produce no
// record.
type PageRecord struct {
	Document string
	Page     int
	Text     string
}

// Document is the full extracted text of one input file, with an inline
// [Page N] marker preceding each page's text.
type Document struct {
	Name string
	Text string
}

// pageSource abstracts a sequence of page texts so the assembly logic can be
// exercised without PDF fixtures. Page numbers are 1-based; an empty string
// means the page had no extractable text.
type pageSource interface {
	numPages() int
	pageText(n int) (string, error)
}

// ExtractFile opens a single PDF and returns its Document plus the
// PageRecords for every page that yielded text. A file that cannot be opened
// is an error; a page that cannot be decoded is skipped.
func ExtractFile(path string) (Document, []PageRecord, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Document{}, nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	return assemble(name, &readerSource{r: r})
}

// ExtractAll runs ExtractFile over every path in order. The first open
// failure aborts the run; per-page extraction problems never do.
func ExtractAll(paths []string) ([]Document, []PageRecord, error) {
	docs := make([]Document, 0, len(paths))
	var records []PageRecord
	for _, p := range paths {
		doc, recs, err := ExtractFile(p)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, doc)
		records = append(records, recs...)
	}
	return docs, records, nil
}

// assemble builds the marker-annotated document text and the PageRecord list
// from a page source. Empty pages contribute neither a marker nor a record.
func assemble(name string, src pageSource) (Document, []PageRecord, error) {
	var sb strings.Builder
	var records []PageRecord
	total := src.numPages()
	for n := 1; n <= total; n++ {
		text, err := src.pageText(n)
		if err != nil {
			log.Warn().Err(err).Str("document", name).Int("page", n).Msg("page text extraction failed; skipping page")
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n[Page %d]\n%s", n, text)
		records = append(records, PageRecord{Document: name, Page: n, Text: text})
	}
	return Document{Name: name, Text: sb.String()}, records, nil
}

// readerSource adapts a pdf.Reader to the pageSource seam.
type readerSource struct {
	r *pdf.Reader
}

func (s *readerSource) numPages() int { return s.r.NumPage() }

func (s *readerSource) pageText(n int) (string, error) {
	p := s.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}
