package transcribe

import "context"

// Transcriber converts an audio file into plain transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
