package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	base := errors.New("connection refused")
	err := Download("Downloader.Fetch", base, "failed to download audio")

	want := "failed to download audio: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, base) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "direct",
			err:  Transcription("op", nil, "whisper failed"),
			want: KindTranscription,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("stage: %w", IO("op", nil, "mkdir denied")),
			want: KindIO,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", Generation("op", nil, "empty response"))

	if !errors.Is(err, &Error{Kind: KindGeneration}) {
		t.Error("expected match on generation kind")
	}
	if errors.Is(err, &Error{Kind: KindDownload}) {
		t.Error("did not expect match on download kind")
	}
}
