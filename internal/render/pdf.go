package render

import (
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfBodySize   = 11
	pdfLineHeight = 6
)

// RenderPDF writes the report markdown as a paginated A4 document.
func (r *implRenderer) RenderPDF(ctx context.Context, title, markdown, outPath string) error {
	r.logger.Debug(ctx, "rendering PDF: %s", outPath)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr(cleanInline(title)), "", "L", false)
	pdf.Ln(4)

	for _, b := range parseBlocks(markdown) {
		text := tr(cleanInline(b.text))

		switch b.kind {
		case blockHeading:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", headingFontSize(b.level))
			pdf.MultiCell(0, 8, text, "", "L", false)
			pdf.Ln(1)

		case blockBullet:
			pdf.SetFont("Helvetica", "", pdfBodySize)
			pdf.MultiCell(0, pdfLineHeight, tr("  • ")+text, "", "L", false)

		case blockNumbered:
			pdf.SetFont("Helvetica", "", pdfBodySize)
			pdf.MultiCell(0, pdfLineHeight, "  "+text, "", "L", false)

		default:
			pdf.SetFont("Helvetica", "", pdfBodySize)
			pdf.MultiCell(0, pdfLineHeight, text, "", "L", false)
			pdf.Ln(2)
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write PDF %s: %w", outPath, err)
	}

	r.logger.Debug(ctx, "PDF written: %s", outPath)
	return nil
}

func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12.5
	default:
		return pdfBodySize
	}
}
