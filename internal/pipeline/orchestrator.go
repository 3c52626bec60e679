package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mikhailklassen/yt-transcribe/internal/apperr"
)

// Run executes the job's state machine. Stage skipping is decided against the
// artifacts already present in the location; any collaborator failure becomes
// the terminal outcome with no retry. The returned slice records every stage
// that was reached, in order.
func (o *implOrchestrator) Run(ctx context.Context, job Job, loc Location) ([]StageOutcome, error) {
	const op = "Orchestrator.Run"

	var outcomes []StageOutcome

	record := func(stage Stage, status StageStatus, started time.Time, err error) {
		outcome := StageOutcome{Stage: stage, Status: status, Err: err}
		if !started.IsZero() {
			outcome.Duration = time.Since(started)
		}
		outcomes = append(outcomes, outcome)

		switch status {
		case StatusFailed:
			o.logger.Error(ctx, "stage %s failed after %s: %v", stage, outcome.Duration, err)
		case StatusSkipped:
			o.logger.Info(ctx, "stage %s skipped", stage)
		default:
			o.logger.Info(ctx, "stage %s completed in %s", stage, outcome.Duration)
		}
	}

	o.logger.Info(ctx, "job %s started: mode=%s output=%s", job.ID, job.Mode, loc.Dir)

	var transcript string

	switch job.Mode {
	case ModeReport:
		// The transcript path is given explicitly; the location-based lookup
		// is bypassed entirely.
		record(StageDownload, StatusSkipped, time.Time{}, nil)
		record(StageTranscribe, StatusSkipped, time.Time{}, nil)

		data, err := os.ReadFile(job.TranscriptPath)
		if err != nil {
			ferr := apperr.IO(op, err, fmt.Sprintf("cannot read transcript %s", job.TranscriptPath))
			record(StageSummarize, StatusFailed, time.Now(), ferr)
			return outcomes, ferr
		}
		transcript = string(data)

	default:
		if Inspect(loc)[ArtifactTranscript] {
			o.logger.Info(ctx, "transcript already present, reusing: %s", loc.Transcript())
			record(StageDownload, StatusSkipped, time.Time{}, nil)
			record(StageTranscribe, StatusSkipped, time.Time{}, nil)
		} else {
			text, ferr := o.acquireTranscript(ctx, job, loc, record)
			if ferr != nil {
				return outcomes, ferr
			}
			transcript = text
		}
	}

	if job.Mode == ModeTranscribe {
		o.logger.Info(ctx, "job %s done", job.ID)
		return outcomes, nil
	}

	if transcript == "" {
		data, err := os.ReadFile(loc.Transcript())
		if err != nil {
			ferr := apperr.IO(op, err, fmt.Sprintf("cannot read transcript %s", loc.Transcript()))
			record(StageSummarize, StatusFailed, time.Now(), ferr)
			return outcomes, ferr
		}
		transcript = string(data)
	}

	// Reports always regenerate; an existing pair only earns a warning.
	if insp := Inspect(loc); insp[ArtifactReportMarkdown] || insp[ArtifactReportPDF] {
		o.logger.Warn(ctx, "existing report in %s will be overwritten", loc.Dir)
	}

	started := time.Now()
	report, err := o.generator.Generate(ctx, transcript)
	if err != nil {
		ferr := apperr.Generation(op, err, "report generation failed")
		record(StageSummarize, StatusFailed, started, ferr)
		return outcomes, ferr
	}
	if err := writeArtifact(loc.ReportMarkdown(), []byte(report)); err != nil {
		ferr := apperr.IO(op, err, fmt.Sprintf("cannot write %s", loc.ReportMarkdown()))
		record(StageSummarize, StatusFailed, started, ferr)
		return outcomes, ferr
	}
	record(StageSummarize, StatusCompleted, started, nil)

	started = time.Now()
	title := filepath.Base(loc.Dir)
	if ferr := o.renderReport(ctx, job, loc, title, report); ferr != nil {
		record(StageRender, StatusFailed, started, ferr)
		return outcomes, ferr
	}
	record(StageRender, StatusCompleted, started, nil)

	o.logger.Info(ctx, "job %s done", job.ID)
	return outcomes, nil
}

// acquireTranscript runs the audio-dependent stages: download, then
// transcription, with the janitor holding the transient audio throughout.
func (o *implOrchestrator) acquireTranscript(ctx context.Context, job Job, loc Location, record func(Stage, StageStatus, time.Time, error)) (string, error) {
	const op = "Orchestrator.acquireTranscript"

	janitor := NewJanitor(o.logger, job.KeepAudio)

	started := time.Now()
	audioPath, err := o.downloader.Download(ctx, job.URL, loc.Dir)
	if err != nil {
		ferr := apperr.Download(op, err, "audio download failed; check the URL and that yt-dlp and ffmpeg are installed")
		record(StageDownload, StatusFailed, started, ferr)
		janitor.Finish(ctx, true)
		return "", ferr
	}
	janitor.Adopt(audioPath)
	record(StageDownload, StatusCompleted, started, nil)

	started = time.Now()
	text, err := o.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		ferr := apperr.Transcription(op, err, "transcription failed")
		record(StageTranscribe, StatusFailed, started, ferr)
		janitor.Finish(ctx, true)
		return "", ferr
	}
	if err := writeArtifact(loc.Transcript(), []byte(text)); err != nil {
		ferr := apperr.IO(op, err, fmt.Sprintf("cannot write %s", loc.Transcript()))
		record(StageTranscribe, StatusFailed, started, ferr)
		janitor.Finish(ctx, true)
		return "", ferr
	}
	record(StageTranscribe, StatusCompleted, started, nil)

	janitor.Finish(ctx, false)
	return text, nil
}

// renderReport produces the PDF (and optionally docx) from report markdown.
// Documents render into a temp path first so a failed render never leaves a
// partial artifact visible to a later run.
func (o *implOrchestrator) renderReport(ctx context.Context, job Job, loc Location, title, report string) error {
	const op = "Orchestrator.renderReport"

	tmpPDF := loc.ReportPDF() + ".tmp"
	if err := o.renderer.RenderPDF(ctx, title, report, tmpPDF); err != nil {
		_ = os.Remove(tmpPDF)
		return apperr.Render(op, err, "PDF rendering failed")
	}
	if err := os.Rename(tmpPDF, loc.ReportPDF()); err != nil {
		_ = os.Remove(tmpPDF)
		return apperr.IO(op, err, fmt.Sprintf("cannot write %s", loc.ReportPDF()))
	}

	if job.Docx {
		tmpDocx := loc.ReportDocx() + ".tmp"
		if err := o.renderer.RenderDocx(ctx, title, report, tmpDocx); err != nil {
			_ = os.Remove(tmpDocx)
			return apperr.Render(op, err, "docx rendering failed")
		}
		if err := os.Rename(tmpDocx, loc.ReportDocx()); err != nil {
			_ = os.Remove(tmpDocx)
			return apperr.IO(op, err, fmt.Sprintf("cannot write %s", loc.ReportDocx()))
		}
	}

	return nil
}

// writeArtifact writes data through a temp file in the same directory and
// renames it into place, so a partially written artifact is never visible.
func writeArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
