package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mikhailklassen/yt-transcribe/internal/logger"
	"github.com/mikhailklassen/yt-transcribe/internal/validation"
	"github.com/mikhailklassen/yt-transcribe/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	var (
		openaiModel   string
		prompt        string
		maxConcurrent int
		docx          bool
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and generate reports for dropped transcript files",
		Long:  "Watch a directory for newly created .txt transcript files and run report generation on each. Reports are written beside their transcripts. Runs until interrupted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, debug, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if openaiModel != "" {
				cfg.Generation.Model = openaiModel
			}
			if maxConcurrent > 0 {
				cfg.Watch.MaxConcurrent = maxConcurrent
			}

			// Generation inputs are validated once up front; each dropped
			// file revalidates only its own transcript.
			var msgs []string
			if ok, msg := validation.CheckGenerationModel(cfg.Generation.Model); !ok {
				msgs = append(msgs, msg)
			}
			if ok, msg := validation.CheckAPIKey(apiKeyFor(cfg, cfg.Generation.Model), cfg.Generation.Model); !ok {
				msgs = append(msgs, msg)
			}
			if ok, msg := validation.CheckOutputDir(args[0]); !ok {
				msgs = append(msgs, msg)
			}
			if len(msgs) > 0 {
				return failFast(msgs)
			}

			log := logger.New(debug)
			opts := jobOptions{prompt: prompt, docx: docx}

			handler := func(ctx context.Context, transcriptPath string) error {
				return runReportJob(ctx, cfg, debug, transcriptPath, opts)
			}

			w, err := watcher.New(args[0], handler, log, cfg.Watch.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&openaiModel, "openai-model", "", "generation model (gpt-*, o1* or gemini-*)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "report prompt override (text, or @path to load from a file)")
	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 0, "maximum transcripts processed at once")
	cmd.Flags().BoolVar(&docx, "docx", false, "also export reports as Word documents")

	return cmd
}
