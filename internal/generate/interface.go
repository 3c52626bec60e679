package generate

import "context"

// Generator turns transcript text into report prose in markdown.
type Generator interface {
	Generate(ctx context.Context, transcript string) (string, error)
}
