package executor

import "context"

// Executor runs external tools (yt-dlp, ffmpeg, whisper) on behalf of the
// pipeline stages.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
