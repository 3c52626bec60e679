package pipeline

import (
	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

type implOrchestrator struct {
	downloader  Downloader
	transcriber Transcriber
	generator   Generator
	renderer    Renderer
	logger      logger.Logger
}

// New creates an Orchestrator over the supplied collaborators. Any of them
// may be nil when the command mode cannot reach the corresponding stage.
func New(dl Downloader, tr Transcriber, gen Generator, rnd Renderer, log logger.Logger) Orchestrator {
	return &implOrchestrator{
		downloader:  dl,
		transcriber: tr,
		generator:   gen,
		renderer:    rnd,
		logger:      log,
	}
}
