package render

import (
	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

type implRenderer struct {
	logger logger.Logger
}

// New creates a Renderer for report documents.
func New(log logger.Logger) Renderer {
	return &implRenderer{logger: log}
}
