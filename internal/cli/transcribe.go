package cli

import (
	"github.com/spf13/cobra"

	"github.com/mikhailklassen/yt-transcribe/internal/pipeline"
)

func newTranscribeCmd() *cobra.Command {
	var (
		outputDir string
		model     string
		device    string
		keepAudio bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <url>",
		Short: "Download a YouTube video's audio and produce a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, debug, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Output.BaseDir = outputDir
			}
			if model != "" {
				cfg.Whisper.Model = model
			}
			if device != "" {
				cfg.Whisper.Device = device
			}

			return runURLJob(cmd.Context(), cfg, debug, pipeline.ModeTranscribe, args[0], jobOptions{
				keepAudio: keepAudio,
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "base directory for output files")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Whisper model size (tiny, base, small, medium, large, large-v2, large-v3)")
	cmd.Flags().StringVarP(&device, "device", "d", "", "device for transcription (cpu or cuda)")
	cmd.Flags().BoolVar(&keepAudio, "keep-audio", false, "keep the downloaded audio file after transcription")

	return cmd
}
