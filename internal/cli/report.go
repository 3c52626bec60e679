package cli

import (
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var (
		openaiModel string
		prompt      string
		docx        bool
	)

	cmd := &cobra.Command{
		Use:   "report <transcript-file>",
		Short: "Generate an AI-written report from an existing transcript file",
		Long:  "Generate an AI-written report from an existing transcript file. Outputs are written beside the transcript, regardless of any configured output directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, debug, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if openaiModel != "" {
				cfg.Generation.Model = openaiModel
			}

			return runReportJob(cmd.Context(), cfg, debug, args[0], jobOptions{
				prompt: prompt,
				docx:   docx,
			})
		},
	}

	cmd.Flags().StringVar(&openaiModel, "openai-model", "", "generation model (gpt-*, o1* or gemini-*)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "report prompt override (text, or @path to load from a file)")
	cmd.Flags().BoolVar(&docx, "docx", false, "also export the report as a Word document")

	return cmd
}
