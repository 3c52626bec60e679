package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mikhailklassen/yt-transcribe/internal/config"
	"github.com/mikhailklassen/yt-transcribe/internal/pipeline"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Output.BaseDir = filepath.Join(t.TempDir(), "out")
	return cfg
}

func locationCount(t *testing.T, base string) int {
	t.Helper()
	entries, err := os.ReadDir(base)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	return len(entries)
}

func TestRunURLJobFailFastOnInvalidModel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Whisper.Model = "huge"

	err := runURLJob(context.Background(), cfg, false, pipeline.ModeTranscribe,
		"https://youtu.be/dQw4w9WgXcQ", jobOptions{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "invalid Whisper model") {
		t.Errorf("error = %v, want invalid model message", err)
	}

	// Fail-fast: no date/slug location may exist under the base.
	if n := locationCount(t, cfg.Output.BaseDir); n != 0 {
		t.Errorf("output base has %d entries, want none before validation passes", n)
	}
}

func TestRunURLJobFailFastOnMissingKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.OpenAIKey = ""

	err := runURLJob(context.Background(), cfg, false, pipeline.ModeSummarize,
		"https://youtu.be/dQw4w9WgXcQ", jobOptions{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error = %v, want missing key message", err)
	}
}

func TestRunURLJobCollectsAllMessages(t *testing.T) {
	cfg := testConfig(t)
	cfg.Whisper.Model = "huge"
	cfg.Whisper.Device = "tpu"

	err := runURLJob(context.Background(), cfg, false, pipeline.ModeTranscribe,
		"not-a-url", jobOptions{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	for _, want := range []string{"YouTube URL", "Whisper model", "device"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("aggregated error missing %q: %v", want, err)
		}
	}
}

func TestRunReportJobFailFastOnMissingTranscript(t *testing.T) {
	cfg := testConfig(t)
	cfg.OpenAIKey = "sk-" + strings.Repeat("a", 40)

	err := runReportJob(context.Background(), cfg, false,
		filepath.Join(t.TempDir(), "missing.txt"), jobOptions{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestNewRootCmdHasAllCommands(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{"transcribe": false, "summarize": false, "report": false, "watch": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
