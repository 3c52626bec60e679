package transcribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

// fakeExecutor simulates whisper by writing a .txt beside the output prefix.
type fakeExecutor struct {
	execErr     error
	missingTool string
	transcript  string
	lastArgs    []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.lastArgs = args
	if f.execErr != nil {
		return "", f.execErr
	}
	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".txt", []byte(f.transcript), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if name == f.missingTool {
		return "", errors.New("tool '" + name + "' not found on PATH")
	}
	return "/usr/bin/" + name, nil
}

func modelsDirWith(t *testing.T, model string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ggml-"+model+".bin"), []byte("weights"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newTranscriber(exec *fakeExecutor, modelsDir, device string) Transcriber {
	return New(Config{
		BinaryPath: "whisper-cli",
		ModelsDir:  modelsDir,
		Model:      "base",
		Device:     device,
		Threads:    4,
	}, exec, logger.New(false))
}

func TestTranscribeSuccess(t *testing.T) {
	exec := &fakeExecutor{transcript: "  hello from whisper \n"}
	tr := newTranscriber(exec, modelsDirWith(t, "base"), "cpu")

	text, err := tr.Transcribe(context.Background(), "/tmp/audio.mp3")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "hello from whisper" {
		t.Errorf("transcript = %q, want trimmed text", text)
	}
}

func TestTranscribeCPUDisablesGPU(t *testing.T) {
	exec := &fakeExecutor{transcript: "text"}
	tr := newTranscriber(exec, modelsDirWith(t, "base"), "cpu")

	if _, err := tr.Transcribe(context.Background(), "/tmp/audio.mp3"); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if !contains(exec.lastArgs, "--no-gpu") {
		t.Error("cpu device must pass --no-gpu")
	}
}

func TestTranscribeCUDAKeepsGPU(t *testing.T) {
	exec := &fakeExecutor{transcript: "text"}
	tr := newTranscriber(exec, modelsDirWith(t, "base"), "cuda")

	if _, err := tr.Transcribe(context.Background(), "/tmp/audio.mp3"); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if contains(exec.lastArgs, "--no-gpu") {
		t.Error("cuda device must not pass --no-gpu")
	}
}

func TestTranscribeMissingModelFile(t *testing.T) {
	exec := &fakeExecutor{transcript: "text"}
	tr := newTranscriber(exec, t.TempDir(), "cpu") // no ggml file

	_, err := tr.Transcribe(context.Background(), "/tmp/audio.mp3")
	if err == nil || !strings.Contains(err.Error(), "model file not found") {
		t.Errorf("expected missing-model error with hint, got %v", err)
	}
}

func TestTranscribeEmptyOutput(t *testing.T) {
	exec := &fakeExecutor{transcript: "   \n"}
	tr := newTranscriber(exec, modelsDirWith(t, "base"), "cpu")

	_, err := tr.Transcribe(context.Background(), "/tmp/audio.mp3")
	if err == nil || !strings.Contains(err.Error(), "empty transcript") {
		t.Errorf("expected empty-transcript error, got %v", err)
	}
}

func TestTranscribeMissingBinaryHint(t *testing.T) {
	exec := &fakeExecutor{missingTool: "whisper-cli"}
	tr := newTranscriber(exec, modelsDirWith(t, "base"), "cpu")

	_, err := tr.Transcribe(context.Background(), "/tmp/audio.mp3")
	if err == nil || !strings.Contains(err.Error(), "whisper.cpp") {
		t.Errorf("expected remediation hint, got %v", err)
	}
}

func contains(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
