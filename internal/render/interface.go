package render

import "context"

// Renderer turns report markdown into fixed-format documents.
type Renderer interface {
	RenderPDF(ctx context.Context, title, markdown, outPath string) error
	RenderDocx(ctx context.Context, title, markdown, outPath string) error
}
