package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantOK bool
		wantID string
	}{
		{
			name:   "standard watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantOK: true,
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "short URL",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			wantOK: true,
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "embed URL",
			url:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantOK: true,
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "no scheme",
			url:    "youtube.com/watch?v=dQw4w9WgXcQ",
			wantOK: true,
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "empty",
			url:    "",
			wantOK: false,
		},
		{
			name:   "other host",
			url:    "https://vimeo.com/12345678",
			wantOK: false,
		},
		{
			name:   "short video id",
			url:    "https://www.youtube.com/watch?v=short",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg, id := CheckURL(tt.url)
			if ok != tt.wantOK {
				t.Errorf("CheckURL(%q) ok = %v, want %v (%s)", tt.url, ok, tt.wantOK, msg)
			}
			if ok && id != tt.wantID {
				t.Errorf("CheckURL(%q) id = %q, want %q", tt.url, id, tt.wantID)
			}
			if msg == "" {
				t.Error("message must never be empty")
			}
		})
	}
}

func TestCheckWhisperModel(t *testing.T) {
	tests := []struct {
		model  string
		wantOK bool
	}{
		{"base", true},
		{"tiny", true},
		{"large-v3", true},
		{"LARGE", true}, // case-insensitive
		{"huge", false},
		{"", false},
		{"base-v9", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			ok, msg := CheckWhisperModel(tt.model)
			if ok != tt.wantOK {
				t.Errorf("CheckWhisperModel(%q) = %v, want %v (%s)", tt.model, ok, tt.wantOK, msg)
			}
		})
	}
}

func TestCheckGenerationModel(t *testing.T) {
	tests := []struct {
		model  string
		wantOK bool
	}{
		{"gpt-4", true},
		{"gpt-4o-mini", true},
		{"o1-preview", true},
		{"gemini-2.5-flash", true},
		{"claude-3", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			ok, _ := CheckGenerationModel(tt.model)
			if ok != tt.wantOK {
				t.Errorf("CheckGenerationModel(%q) = %v, want %v", tt.model, ok, tt.wantOK)
			}
		})
	}
}

func TestCheckAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		model  string
		wantOK bool
	}{
		{"valid openai key", "sk-" + strings.Repeat("a", 40), "gpt-4", true},
		{"missing key", "", "gpt-4", false},
		{"wrong prefix", "pk-" + strings.Repeat("a", 40), "gpt-4", false},
		{"too short", "sk-abc", "gpt-4", false},
		{"gemini key without sk prefix", "AIzaSyExample12345", "gemini-2.5-flash", true},
		{"gemini key missing", "", "gemini-2.5-flash", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := CheckAPIKey(tt.key, tt.model)
			if ok != tt.wantOK {
				t.Errorf("CheckAPIKey() = %v, want %v (%s)", ok, tt.wantOK, msg)
			}
			if tt.key != "" && strings.Contains(msg, tt.key) {
				t.Error("message must never echo the key")
			}
		})
	}
}

func TestCheckOutputDir(t *testing.T) {
	base := t.TempDir()

	ok, msg := CheckOutputDir(filepath.Join(base, "nested", "out"))
	if !ok {
		t.Errorf("expected creatable directory to pass: %s", msg)
	}

	ok, _ = CheckOutputDir("")
	if ok {
		t.Error("empty path must fail")
	}
}

func TestCheckTranscriptFile(t *testing.T) {
	dir := t.TempDir()

	full := filepath.Join(dir, "transcript.txt")
	if err := os.WriteFile(full, []byte("some words"), 0644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		wantOK bool
	}{
		{"existing non-empty", full, true},
		{"zero byte", empty, false},
		{"missing", filepath.Join(dir, "nope.txt"), false},
		{"directory", dir, false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := CheckTranscriptFile(tt.path)
			if ok != tt.wantOK {
				t.Errorf("CheckTranscriptFile(%q) = %v, want %v (%s)", tt.path, ok, tt.wantOK, msg)
			}
		})
	}
}
