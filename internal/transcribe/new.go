package transcribe

import (
	"github.com/mikhailklassen/yt-transcribe/internal/logger"
	"github.com/mikhailklassen/yt-transcribe/pkg/executor"
)

// Config selects the whisper binary, the model catalog directory and the
// inference options.
type Config struct {
	BinaryPath string
	ModelsDir  string
	Model      string
	Device     string
	Threads    int
}

type implTranscriber struct {
	cfg      Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the whisper.cpp command-line tool.
func New(cfg Config, exec executor.Executor, log logger.Logger) Transcriber {
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = "models"
	}
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
