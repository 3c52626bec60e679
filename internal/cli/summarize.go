package cli

import (
	"github.com/spf13/cobra"

	"github.com/mikhailklassen/yt-transcribe/internal/pipeline"
)

func newSummarizeCmd() *cobra.Command {
	var (
		outputDir   string
		model       string
		device      string
		openaiModel string
		prompt      string
		keepAudio   bool
		docx        bool
	)

	cmd := &cobra.Command{
		Use:   "summarize <url>",
		Short: "Transcribe a YouTube video and generate an AI-written report",
		Long:  "Transcribe a YouTube video and generate an AI-written report exported as Markdown and PDF. An existing transcript in the output location is reused; the report is always regenerated.",
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
			if openaiModel != "" {
				cfg.Generation.Model = openaiModel
			}

			return runURLJob(cmd.Context(), cfg, debug, pipeline.ModeSummarize, args[0], jobOptions{
				prompt:    prompt,
				keepAudio: keepAudio,
				docx:      docx,
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "base directory for output files")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Whisper model size (tiny, base, small, medium, large, large-v2, large-v3)")
	cmd.Flags().StringVarP(&device, "device", "d", "", "device for transcription (cpu or cuda)")
	cmd.Flags().StringVar(&openaiModel, "openai-model", "", "generation model (gpt-*, o1* or gemini-*)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "report prompt override (text, or @path to load from a file)")
	cmd.Flags().BoolVar(&keepAudio, "keep-audio", false, "keep the downloaded audio file after transcription")
	cmd.Flags().BoolVar(&docx, "docx", false, "also export the report as a Word document")

	return cmd
}
