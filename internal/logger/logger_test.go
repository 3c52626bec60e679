package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewJobWritesToFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "job.log")

	log, closer := NewJob("job-123", logPath, false)
	log.Info(ctx, "stage %s started", "download")
	log.Debug(ctx, "debug detail")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log sink: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read job log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "stage download started") {
		t.Errorf("job log missing info line, got:\n%s", content)
	}
	if !strings.Contains(content, "job-123") {
		t.Errorf("job log missing job id field, got:\n%s", content)
	}
	if !strings.Contains(content, "debug detail") {
		t.Errorf("job log should capture debug lines regardless of console level, got:\n%s", content)
	}
}

func TestNewDoesNotPanicWithoutFile(t *testing.T) {
	log := New(true)
	log.Info(context.Background(), "console only")
}
