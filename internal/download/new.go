package download

import (
	"github.com/mikhailklassen/yt-transcribe/internal/logger"
	"github.com/mikhailklassen/yt-transcribe/pkg/executor"
)

// Config selects the yt-dlp binary and the audio extraction settings.
type Config struct {
	YtDlpPath    string
	AudioFormat  string
	AudioQuality string
}

type implDownloader struct {
	cfg      Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by the yt-dlp command-line tool.
func New(cfg Config, exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
