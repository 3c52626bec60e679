package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries tool locations and stage defaults. Values resolve in three
// layers: built-in defaults, optional yaml file, then command-line flags.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Download   DownloadConfig   `yaml:"download"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Generation GenerationConfig `yaml:"generation"`
	Watch      WatchConfig      `yaml:"watch"`

	// API keys come only from the environment, never from the yaml file,
	// and are never logged.
	OpenAIKey string `yaml:"-"`
	GeminiKey string `yaml:"-"`
}

type OutputConfig struct {
	BaseDir string `yaml:"base_dir"`
}

type DownloadConfig struct {
	YtDlpPath    string `yaml:"ytdlp_path"`
	AudioFormat  string `yaml:"audio_format"`
	AudioQuality string `yaml:"audio_quality"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelsDir  string `yaml:"models_dir"`
	Model      string `yaml:"model"`
	Device     string `yaml:"device"`
	Threads    int    `yaml:"threads"`
}

type GenerationConfig struct {
	Model string `yaml:"model"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the yaml config file if it exists, applies defaults, and pulls
// API keys from the environment (.env honored when present).
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// No file is fine; defaults apply.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiKey = os.Getenv("GEMINI_API_KEY")

	return cfg, nil
}

// Validate fills zero values with defaults and rejects values no stage could
// work with.
func (c *Config) Validate() error {
	if c.Output.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		c.Output.BaseDir = wd
	}
	if c.Download.YtDlpPath == "" {
		c.Download.YtDlpPath = "yt-dlp"
	}
	if c.Download.AudioFormat == "" {
		c.Download.AudioFormat = "mp3"
	}
	if c.Download.AudioQuality == "" {
		c.Download.AudioQuality = "192"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Device == "" {
		c.Whisper.Device = "cpu"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be positive, got %d", c.Whisper.Threads)
	}
	if c.Generation.Model == "" {
		c.Generation.Model = "gpt-4"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Watch.MaxConcurrent < 0 {
		return fmt.Errorf("watch.max_concurrent must be positive, got %d", c.Watch.MaxConcurrent)
	}

	return nil
}
