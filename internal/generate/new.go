package generate

import (
	"strings"

	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

// Config selects the model, its API key and the system prompt.
type Config struct {
	Model  string
	APIKey string
	Prompt string
}

// New creates a Generator for the model. gemini-* models route to the Gemini
// API; everything else goes to OpenAI chat completions.
func New(cfg Config, log logger.Logger) Generator {
	if strings.HasPrefix(cfg.Model, "gemini-") {
		return &implGemini{cfg: cfg, logger: log}
	}
	return &implOpenAI{cfg: cfg, logger: log}
}
