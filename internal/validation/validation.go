package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Each check takes one value and reports accept/reject with a human-readable
// reason. Checks never fail with an error of their own; invalid input is data,
// not control flow. The CLI runs every applicable check before any stage
// executes and aborts on the combined messages.

// whisperModels is the fixed set of accepted Whisper model sizes.
var whisperModels = []string{
	"tiny", "base", "small", "medium", "large", "large-v2", "large-v3",
}

var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/v/([a-zA-Z0-9_-]{11})`),
}

// CheckURL validates a YouTube URL and extracts the 11-character video ID.
func CheckURL(url string) (bool, string, string) {
	if url == "" {
		return false, "URL must be a non-empty string", ""
	}

	for _, pattern := range urlPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return true, "valid YouTube URL", m[1]
		}
	}

	return false, "invalid YouTube URL format; expected youtube.com/watch?v=ID, youtu.be/ID or youtube.com/embed/ID", ""
}

// CheckWhisperModel validates the model name against the fixed catalog.
func CheckWhisperModel(model string) (bool, string) {
	if model == "" {
		return false, "Whisper model must be a non-empty string"
	}

	name := strings.ToLower(model)
	for _, m := range whisperModels {
		if name == m {
			return true, fmt.Sprintf("valid Whisper model: %s", name)
		}
	}

	return false, fmt.Sprintf("invalid Whisper model %q; valid models: %s",
		model, strings.Join(whisperModels, ", "))
}

// CheckDevice validates the transcription device.
func CheckDevice(device string) (bool, string) {
	switch strings.ToLower(device) {
	case "cpu", "cuda":
		return true, fmt.Sprintf("valid device: %s", strings.ToLower(device))
	default:
		return false, fmt.Sprintf("invalid device %q; must be cpu or cuda", device)
	}
}

// CheckGenerationModel validates a text-generation model name. A gpt-* or o1*
// prefix addresses OpenAI; gemini-* addresses the Gemini backend. The prefix
// check keeps new model versions working without a catalog update.
func CheckGenerationModel(model string) (bool, string) {
	if model == "" {
		return false, "generation model must be a non-empty string"
	}

	if strings.HasPrefix(model, "gpt-") || strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "gemini-") {
		return true, fmt.Sprintf("generation model: %s", model)
	}

	return false, fmt.Sprintf("invalid generation model %q; must start with 'gpt-', 'o1' or 'gemini-'", model)
}

// CheckAPIKey validates key presence and, for OpenAI keys, the expected
// format. The key value itself never appears in any message.
func CheckAPIKey(key, model string) (bool, string) {
	if key == "" {
		if strings.HasPrefix(model, "gemini-") {
			return false, "GEMINI_API_KEY environment variable not set; set it in your environment or .env file"
		}
		return false, "OPENAI_API_KEY environment variable not set; set it in your environment or .env file"
	}

	if strings.HasPrefix(model, "gemini-") {
		return true, "API key present"
	}

	if !strings.HasPrefix(key, "sk-") {
		return false, "invalid API key format: OpenAI keys start with 'sk-'; check OPENAI_API_KEY"
	}
	if len(key) < 20 {
		return false, "API key appears too short; check OPENAI_API_KEY"
	}

	return true, "API key format is valid"
}

// CheckOutputDir validates that the directory can be created and written to,
// using a probe file that is removed immediately.
func CheckOutputDir(dir string) (bool, string) {
	if dir == "" {
		return false, "output directory must be a non-empty path"
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Sprintf("cannot create directory %s: %v", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("test"), 0644); err != nil {
		return false, fmt.Sprintf("cannot write to %s: %v", dir, err)
	}
	_ = os.Remove(probe)

	return true, fmt.Sprintf("output directory is writable: %s", dir)
}

// CheckTranscriptFile validates that an existing transcript is readable and
// non-empty, for report-from-file mode.
func CheckTranscriptFile(path string) (bool, string) {
	if path == "" {
		return false, "transcript path must be a non-empty string"
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Sprintf("transcript file not found: %s", path)
	}
	if info.IsDir() {
		return false, fmt.Sprintf("transcript path is a directory: %s", path)
	}
	if info.Size() == 0 {
		return false, fmt.Sprintf("transcript file is empty: %s", path)
	}

	return true, fmt.Sprintf("transcript file: %s", path)
}
