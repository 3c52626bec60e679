package generate

import (
	"fmt"
	"os"
	"strings"
)

// defaultPrompt is the analyst instruction used when no override is given.
const defaultPrompt = `You are an expert analyst who creates comprehensive reports from video transcripts.

Create a detailed report with the following sections:

## Summary
Provide a clear and concise summary of the video content.

## Key Ideas
List and explain the main ideas and concepts discussed in the video.

## Why It Matters
This section should go beyond mere summarization to provide meaningful context and significance. Analyze the content and naturally connect it to broader ideas, contexts, and implications that are genuinely relevant to the topic.

Consider where appropriate (but only if truly relevant to the content):
- How these ideas fit into larger intellectual or cultural conversations
- Connections to established theories, movements, or trends
- Real-world applications or consequences
- Why these concepts matter to understanding the world
- Cross-disciplinary connections that illuminate the topic

Write this as a cohesive analytical narrative, not as separate subsections. Focus on making insightful connections that help readers understand the deeper significance of the content, rather than forcing coverage of unrelated areas.

Format your response as Markdown.`

// ResolvePrompt returns the system prompt for a job. An empty override keeps
// the default; an @path override loads the prompt from a file; anything else
// is used verbatim.
func ResolvePrompt(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return defaultPrompt, nil
	}

	if path, ok := strings.CutPrefix(override, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read prompt file %s: %w", path, err)
		}
		prompt := strings.TrimSpace(string(data))
		if prompt == "" {
			return "", fmt.Errorf("prompt file %s is empty", path)
		}
		return prompt, nil
	}

	return override, nil
}
