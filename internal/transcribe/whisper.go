package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs whisper on the audio file and returns the transcript text.
// Whisper writes a .txt next to a temp prefix; the file is read back and
// removed so only the orchestrator decides what lands in the output tree.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := t.executor.LookPath(t.cfg.BinaryPath); err != nil {
		return "", fmt.Errorf("%w; build whisper.cpp (https://github.com/ggerganov/whisper.cpp) and ensure %s is on PATH", err, t.cfg.BinaryPath)
	}

	modelFile, err := t.modelFile()
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "whisper-*")
	if err != nil {
		return "", fmt.Errorf("create scratch directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "transcript")

	t.logger.Info(ctx, "transcribing %s with model %s on %s", audioPath, t.cfg.Model, t.cfg.Device)

	args := []string{
		"-m", modelFile,
		"-f", audioPath,
		"-otxt",
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if strings.EqualFold(t.cfg.Device, "cpu") {
		args = append(args, "--no-gpu")
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("whisper produced an empty transcript for %s", audioPath)
	}

	t.logger.Info(ctx, "transcription complete (%d characters)", len(text))
	return text, nil
}

// modelFile maps the model name onto its ggml weights file and verifies it
// exists before the expensive stage starts.
func (t *implTranscriber) modelFile() (string, error) {
	name := strings.ToLower(t.cfg.Model)
	path := filepath.Join(t.cfg.ModelsDir, fmt.Sprintf("ggml-%s.bin", name))

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("whisper model file not found: %s; download it from https://huggingface.co/ggerganov/whisper.cpp", path)
	}
	return path, nil
}
