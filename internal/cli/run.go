package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mikhailklassen/yt-transcribe/internal/config"
	"github.com/mikhailklassen/yt-transcribe/internal/download"
	"github.com/mikhailklassen/yt-transcribe/internal/generate"
	"github.com/mikhailklassen/yt-transcribe/internal/logger"
	"github.com/mikhailklassen/yt-transcribe/internal/pipeline"
	"github.com/mikhailklassen/yt-transcribe/internal/render"
	"github.com/mikhailklassen/yt-transcribe/internal/transcribe"
	"github.com/mikhailklassen/yt-transcribe/internal/validation"
	"github.com/mikhailklassen/yt-transcribe/pkg/executor"
)

// loadConfig reads the yaml config named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, bool, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, debug, nil
}

// failFast joins validation messages into one abort error. Nothing has been
// created or contacted by the time this is returned.
func failFast(msgs []string) error {
	return errors.New("invalid input:\n  - " + strings.Join(msgs, "\n  - "))
}

// apiKeyFor picks the key matching the generation backend.
func apiKeyFor(cfg *config.Config, model string) string {
	if strings.HasPrefix(model, "gemini-") {
		return cfg.GeminiKey
	}
	return cfg.OpenAIKey
}

// jobOptions carries the per-command flags that are not config values.
type jobOptions struct {
	prompt    string
	keepAudio bool
	docx      bool
}

// runURLJob drives transcribe and summarize mode: validate, resolve the
// output location, then hand the job to the orchestrator.
func runURLJob(ctx context.Context, cfg *config.Config, debug bool, mode pipeline.Mode, url string, opts jobOptions) error {
	var msgs []string

	ok, msg, videoID := validation.CheckURL(url)
	if !ok {
		msgs = append(msgs, msg)
	}
	if ok, msg := validation.CheckWhisperModel(cfg.Whisper.Model); !ok {
		msgs = append(msgs, msg)
	}
	if ok, msg := validation.CheckDevice(cfg.Whisper.Device); !ok {
		msgs = append(msgs, msg)
	}
	if ok, msg := validation.CheckOutputDir(cfg.Output.BaseDir); !ok {
		msgs = append(msgs, msg)
	}

	var prompt string
	if mode == pipeline.ModeSummarize {
		if ok, msg := validation.CheckGenerationModel(cfg.Generation.Model); !ok {
			msgs = append(msgs, msg)
		}
		if ok, msg := validation.CheckAPIKey(apiKeyFor(cfg, cfg.Generation.Model), cfg.Generation.Model); !ok {
			msgs = append(msgs, msg)
		}
		var err error
		prompt, err = generate.ResolvePrompt(opts.prompt)
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if len(msgs) > 0 {
		return failFast(msgs)
	}

	job := pipeline.Job{
		ID:              uuid.NewString(),
		Mode:            mode,
		Date:            time.Now(),
		URL:             url,
		VideoID:         videoID,
		OutputBase:      cfg.Output.BaseDir,
		WhisperModel:    strings.ToLower(cfg.Whisper.Model),
		Device:          strings.ToLower(cfg.Whisper.Device),
		GenerationModel: cfg.Generation.Model,
		Prompt:          prompt,
		KeepAudio:       opts.keepAudio,
		Docx:            opts.docx,
	}

	loc, err := pipeline.Resolve(job.OutputBase, job.Date, job.Title())
	if err != nil {
		return err
	}

	log, closer := logger.NewJob(job.ID, loc.JobLog(), debug)
	defer closer.Close()

	exec := executor.New()
	dl := download.New(download.Config{
		YtDlpPath:    cfg.Download.YtDlpPath,
		AudioFormat:  cfg.Download.AudioFormat,
		AudioQuality: cfg.Download.AudioQuality,
	}, exec, log)
	tr := transcribe.New(transcribe.Config{
		BinaryPath: cfg.Whisper.BinaryPath,
		ModelsDir:  cfg.Whisper.ModelsDir,
		Model:      job.WhisperModel,
		Device:     job.Device,
		Threads:    cfg.Whisper.Threads,
	}, exec, log)

	var gen pipeline.Generator
	var rnd pipeline.Renderer
	if mode == pipeline.ModeSummarize {
		gen = generate.New(generate.Config{
			Model:  job.GenerationModel,
			APIKey: apiKeyFor(cfg, job.GenerationModel),
			Prompt: job.Prompt,
		}, log)
		rnd = render.New(log)
	}

	orc := pipeline.New(dl, tr, gen, rnd, log)
	outcomes, err := orc.Run(ctx, job, loc)
	printSummary(outcomes, loc, job)
	return err
}

// runReportJob drives report-from-file mode. Outputs land beside the given
// transcript; the configured output base is not consulted.
func runReportJob(ctx context.Context, cfg *config.Config, debug bool, transcriptPath string, opts jobOptions) error {
	var msgs []string

	if ok, msg := validation.CheckTranscriptFile(transcriptPath); !ok {
		msgs = append(msgs, msg)
	}
	if ok, msg := validation.CheckGenerationModel(cfg.Generation.Model); !ok {
		msgs = append(msgs, msg)
	}
	if ok, msg := validation.CheckAPIKey(apiKeyFor(cfg, cfg.Generation.Model), cfg.Generation.Model); !ok {
		msgs = append(msgs, msg)
	}
	prompt, err := generate.ResolvePrompt(opts.prompt)
	if err != nil {
		msgs = append(msgs, err.Error())
	}
	if len(msgs) > 0 {
		return failFast(msgs)
	}

	absPath, err := filepath.Abs(transcriptPath)
	if err != nil {
		return fmt.Errorf("resolve transcript path: %w", err)
	}

	job := pipeline.Job{
		ID:              uuid.NewString(),
		Mode:            pipeline.ModeReport,
		Date:            time.Now(),
		TranscriptPath:  absPath,
		GenerationModel: cfg.Generation.Model,
		Prompt:          prompt,
		Docx:            opts.docx,
	}

	loc := pipeline.LocationAt(filepath.Dir(absPath))

	log, closer := logger.NewJob(job.ID, loc.JobLog(), debug)
	defer closer.Close()

	gen := generate.New(generate.Config{
		Model:  job.GenerationModel,
		APIKey: apiKeyFor(cfg, job.GenerationModel),
		Prompt: job.Prompt,
	}, log)

	orc := pipeline.New(nil, nil, gen, render.New(log), log)
	outcomes, err := orc.Run(ctx, job, loc)
	printSummary(outcomes, loc, job)
	return err
}

// printSummary writes the user-facing result of a run to stdout. The full
// stage detail lives in the job log, not here.
func printSummary(outcomes []pipeline.StageOutcome, loc pipeline.Location, job pipeline.Job) {
	for _, o := range outcomes {
		switch o.Status {
		case pipeline.StatusCompleted:
			fmt.Printf("✓ %s (%s)\n", o.Stage, o.Duration.Round(time.Millisecond))
		case pipeline.StatusSkipped:
			fmt.Printf("- %s skipped\n", o.Stage)
		case pipeline.StatusFailed:
			fmt.Printf("✗ %s failed\n", o.Stage)
		}
	}

	if len(outcomes) == 0 {
		return
	}
	if last := outcomes[len(outcomes)-1]; last.Status == pipeline.StatusFailed {
		fmt.Printf("\nSee %s for details.\n", loc.JobLog())
		return
	}

	fmt.Println()
	if job.Mode != pipeline.ModeReport {
		fmt.Printf("Transcript: %s\n", loc.Transcript())
	}
	if job.Mode != pipeline.ModeTranscribe {
		fmt.Printf("Report:     %s\n", loc.ReportMarkdown())
		fmt.Printf("PDF:        %s\n", loc.ReportPDF())
		if job.Docx {
			fmt.Printf("Docx:       %s\n", loc.ReportDocx())
		}
	}
}
