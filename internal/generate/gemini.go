package generate

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

type implGemini struct {
	cfg    Config
	logger logger.Logger
}

// Generate sends the transcript with the analyst prompt to the Gemini API
// and returns the markdown report.
func (g *implGemini) Generate(ctx context.Context, transcript string) (string, error) {
	g.logger.Info(ctx, "generating report with %s", g.cfg.Model)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create Gemini client: %w", err)
	}

	prompt := g.cfg.Prompt + "\n\nPlease analyze this transcript and create a report:\n\n" + transcript

	result, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("Gemini API returned an empty response")
	}

	var report string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			report += part.Text
		}
	}
	if report == "" {
		return "", fmt.Errorf("Gemini API returned an empty response")
	}

	g.logger.Info(ctx, "report generated (%d characters)", len(report))
	return report, nil
}
