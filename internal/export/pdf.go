// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

// ErrFontMissing is returned when the regular font asset cannot be loaded.
// Without it Cyrillic text renders as garbage, so rendering refuses to
// start.
var ErrFontMissing = errors.New("pdf font asset not found")

const (
	fontFamily      = "DejaVuSans"
	regularFontFile = "DejaVuSans.ttf"
	boldFontFile    = "DejaVuSans-Bold.ttf"

	pageMargin   = 50
	titleSize    = 18
	heading1Size = 16
	heading2Size = 14
	bodySize     = 11
	bodyLeading  = 16
	sectionGap   = 15
)

// pinnedDate stamps PDF metadata so the same input always produces the same
// bytes.
var pinnedDate = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer renders Markdown text into A4 PDF documents. Fonts are read
// once at construction; the renderer itself is stateless across Render
// calls.
type PDFRenderer struct {
	regular []byte
	bold    []byte
}

// NewPDFRenderer loads the font set from fontsDir. The regular face is
// mandatory. A missing bold face degrades gracefully: bold runs render in
// the regular face and a warning is logged once.
func NewPDFRenderer(fontsDir string) (*PDFRenderer, error) {
	regular, err := os.ReadFile(filepath.Join(fontsDir, regularFontFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFontMissing, filepath.Join(fontsDir, regularFontFile))
	}

	bold, err := os.ReadFile(filepath.Join(fontsDir, boldFontFile))
	if err != nil {
		log.Warn().Str("file", filepath.Join(fontsDir, boldFontFile)).
			Msg("bold font not found, bold text will render in the regular face")
		bold = nil
	}

	return &PDFRenderer{regular: regular, bold: bold}, nil
}

// Render lays the document out on A4 pages: a centered title, then the body
// line by line with # and ## headings in larger bold type and inline
// bold/italic emphasis in paragraphs. The italic face maps to the regular
// one; emphasis survives structurally even without a dedicated font file.
func (r *PDFRenderer) Render(title, body string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetCreationDate(pinnedDate)
	doc.SetModificationDate(pinnedDate)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)

	bold := r.bold
	if bold == nil {
		bold = r.regular
	}
	doc.AddUTF8FontFromBytes(fontFamily, "", r.regular)
	doc.AddUTF8FontFromBytes(fontFamily, "B", bold)
	doc.AddUTF8FontFromBytes(fontFamily, "I", r.regular)
	doc.AddUTF8FontFromBytes(fontFamily, "BI", bold)

	doc.AddPage()

	if title != "" {
		doc.SetFont(fontFamily, "B", titleSize)
		doc.MultiCell(0, titleSize*1.4, StripMarkup(title), "", "C", false)
		doc.Ln(sectionGap)
	}

	html := doc.HTMLBasicNew()
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t\r")
		switch {
		case line == "":
			doc.Ln(bodySize)
		case strings.HasPrefix(line, "## "):
			doc.Ln(sectionGap / 3)
			doc.SetFont(fontFamily, "B", heading2Size)
			doc.MultiCell(0, heading2Size*1.4, StripMarkup(line[3:]), "", "L", false)
			doc.Ln(sectionGap / 3)
		case strings.HasPrefix(line, "# "):
			doc.Ln(sectionGap / 2)
			doc.SetFont(fontFamily, "B", heading1Size)
			doc.MultiCell(0, heading1Size*1.4, StripMarkup(line[2:]), "", "L", false)
			doc.Ln(sectionGap / 2)
		default:
			doc.SetFont(fontFamily, "", bodySize)
			html.Write(bodyLeading, MarkupTags(line))
			doc.Ln(bodyLeading)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
