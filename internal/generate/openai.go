package generate

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mikhailklassen/yt-transcribe/internal/logger"
)

type implOpenAI struct {
	cfg    Config
	logger logger.Logger
}

// Generate sends the transcript with the analyst prompt to the OpenAI chat
// completion API and returns the markdown report.
func (g *implOpenAI) Generate(ctx context.Context, transcript string) (string, error) {
	g.logger.Info(ctx, "generating report with %s", g.cfg.Model)

	client := openai.NewClient(g.cfg.APIKey)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: g.cfg.Prompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Please analyze this transcript and create a report:\n\n" + transcript,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("OpenAI API returned an empty response")
	}

	report := resp.Choices[0].Message.Content
	g.logger.Info(ctx, "report generated (%d characters)", len(report))
	return report, nil
}
