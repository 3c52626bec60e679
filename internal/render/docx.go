package render

import (
	"context"
	"fmt"
	"regexp"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFontName = "Calibri"
	docxFontSize = 11
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// RenderDocx writes the report markdown as a styled Word document.
func (r *implRenderer) RenderDocx(ctx context.Context, title, markdown, outPath string) error {
	r.logger.Debug(ctx, "rendering docx: %s", outPath)

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, b := range parseBlocks(markdown) {
		switch b.kind {
		case blockHeading:
			p := doc.AddParagraph("")
			addStyledRun(p, b.text, true, docxHeadingSize(b.level))
		case blockBullet:
			p := doc.AddParagraph("")
			addRichText(p, "• "+b.text)
		case blockNumbered:
			p := doc.AddParagraph("")
			addRichText(p, b.text)
		default:
			p := doc.AddParagraph("")
			addRichText(p, b.text)
		}
	}

	if err := doc.SaveTo(outPath); err != nil {
		return fmt.Errorf("write docx %s: %w", outPath, err)
	}

	r.logger.Debug(ctx, "docx written: %s", outPath)
	return nil
}

func docxHeadingSize(level int) uint64 {
	switch level {
	case 1:
		return 15
	case 2:
		return 13
	case 3:
		return 12
	default:
		return docxFontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanInline(text)).Font(docxFontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText splits **bold** spans into separate runs so emphasis from the
// model output survives into the document.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanInline(part)).Font(docxFontName).Size(docxFontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanInline(matches[i][1])).Font(docxFontName).Size(docxFontSize).Color("000000").Bold(true)
		}
	}
}
