package pipeline

import "context"

// Orchestrator runs one job end-to-end, sequencing the external collaborators
// and accumulating per-stage outcomes. The outcome slice is always returned,
// including on failure.
type Orchestrator interface {
	Run(ctx context.Context, job Job, loc Location) ([]StageOutcome, error)
}

// Downloader acquires audio for a source URL into destDir and returns the
// path of the transient audio file.
type Downloader interface {
	Download(ctx context.Context, url, destDir string) (string, error)
}

// Transcriber turns an audio file into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Generator turns transcript text into report prose (markdown).
type Generator interface {
	Generate(ctx context.Context, transcript string) (string, error)
}

// Renderer turns report markdown into fixed-format documents.
type Renderer interface {
	RenderPDF(ctx context.Context, title, markdown, outPath string) error
	RenderDocx(ctx context.Context, title, markdown, outPath string) error
}
