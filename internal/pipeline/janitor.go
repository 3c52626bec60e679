package pipeline

import (
	"context"
	"os"

	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

// Janitor owns the lifecycle of the transient audio file. Ownership transfers
// here immediately after the download stage creates the file; no other
// component deletes it. Policy: delete on success unless retention was
// requested; always keep after a failure so the file is available for
// post-mortem inspection.
type Janitor struct {
	log    logger.Logger
	retain bool
	path   string
	done   bool
}

// NewJanitor creates a janitor with the job's retention policy. It holds no
// file until Adopt is called.
func NewJanitor(log logger.Logger, retain bool) *Janitor {
	return &Janitor{log: log, retain: retain}
}

// Adopt transfers ownership of the audio file to the janitor.
func (j *Janitor) Adopt(path string) {
	j.path = path
}

// Finish applies the disposition policy exactly once. Safe to call with no
// adopted file (download never produced one).
func (j *Janitor) Finish(ctx context.Context, failed bool) {
	if j.done || j.path == "" {
		return
	}
	j.done = true

	switch {
	case failed:
		j.log.Warn(ctx, "keeping audio file for inspection after failure: %s", j.path)
	case j.retain:
		j.log.Info(ctx, "keeping audio file as requested: %s", j.path)
	default:
		if err := os.Remove(j.path); err != nil {
			j.log.Warn(ctx, "failed to remove audio file %s: %v", j.path, err)
			return
		}
		j.log.Debug(ctx, "removed audio file: %s", j.path)
	}
}

// Kept reports whether the adopted file survived Finish.
func (j *Janitor) Kept() bool {
	if j.path == "" {
		return false
	}
	_, err := os.Stat(j.path)
	return err == nil
}
