package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio_fixture.mp3")
	if err := os.WriteFile(path, []byte("not really audio"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestJanitorPolicyTable(t *testing.T) {
	tests := []struct {
		name     string
		retain   bool
		failed   bool
		wantKept bool
	}{
		{"success without retention deletes", false, false, false},
		{"success with retention keeps", true, false, true},
		{"failure without retention keeps", false, true, true},
		{"failure with retention keeps", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := writeAudioFixture(t)

			j := NewJanitor(logger.New(false), tt.retain)
			j.Adopt(path)
			j.Finish(ctx, tt.failed)

			_, err := os.Stat(path)
			kept := err == nil
			if kept != tt.wantKept {
				t.Errorf("audio kept = %v, want %v", kept, tt.wantKept)
			}
			if j.Kept() != tt.wantKept {
				t.Errorf("Kept() = %v, want %v", j.Kept(), tt.wantKept)
			}
		})
	}
}

func TestJanitorFinishIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := writeAudioFixture(t)

	j := NewJanitor(logger.New(false), false)
	j.Adopt(path)
	j.Finish(ctx, false)
	// Second call must not panic or act again.
	j.Finish(ctx, true)

	if j.Kept() {
		t.Error("audio should have been deleted on the first Finish")
	}
}

func TestJanitorWithoutAdoptedFile(t *testing.T) {
	j := NewJanitor(logger.New(false), false)
	j.Finish(context.Background(), true)
	if j.Kept() {
		t.Error("Kept() must be false when nothing was adopted")
	}
}
