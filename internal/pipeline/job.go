package pipeline

import "time"

// Mode selects which stages a job may reach.
type Mode string

const (
	// ModeTranscribe produces the transcript only.
	ModeTranscribe Mode = "transcribe"
	// ModeSummarize produces the transcript (if absent) plus the report pair.
	ModeSummarize Mode = "summarize"
	// ModeReport starts from an existing transcript file and produces the
	// report pair beside it.
	ModeReport Mode = "report"
)

// Stage names one pipeline step delegated to an external collaborator.
type Stage string

const (
	StageDownload   Stage = "download"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StageRender     Stage = "render"
)

// StageStatus is the terminal status of one stage within a job.
type StageStatus string

const (
	StatusSkipped   StageStatus = "skipped"
	StatusCompleted StageStatus = "completed"
	StatusFailed    StageStatus = "failed"
)

// StageOutcome records what happened to one stage. The accumulated sequence
// per job is the authoritative record of the run; it is logged in full and
// summarized to the user.
type StageOutcome struct {
	Stage    Stage
	Status   StageStatus
	Duration time.Duration
	Err      error
}

// Job is one immutable unit of work, constructed at CLI entry.
type Job struct {
	ID   string
	Mode Mode
	Date time.Time

	// Source: URL+VideoID for transcribe/summarize, TranscriptPath for report.
	URL            string
	VideoID        string
	TranscriptPath string

	// Resolved options.
	OutputBase      string
	WhisperModel    string
	Device          string
	GenerationModel string
	Prompt          string
	KeepAudio       bool
	Docx            bool
}

// Title derives the deterministic raw title used for the output location.
// It is computed from the video ID alone so the location can be resolved,
// and existing artifacts consulted, before any network call.
func (j Job) Title() string {
	if j.VideoID != "" {
		return "video_" + j.VideoID
	}
	return "video"
}
