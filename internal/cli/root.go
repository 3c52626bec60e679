package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Every subcommand resolves its own
// configuration struct; nothing is inherited implicitly between commands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yt-transcribe",
		Short:         "Transcribe YouTube videos and generate AI-written reports",
		Long:          "yt-transcribe downloads audio from a YouTube video, produces a transcript with Whisper, and can generate an AI-written report exported as Markdown and PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "config.yaml", "path to the yaml config file")
	root.PersistentFlags().Bool("debug", false, "verbose logging to the console")

	root.AddCommand(
		newTranscribeCmd(),
		newSummarizeCmd(),
		newReportCmd(),
		newWatchCmd(),
	)

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
