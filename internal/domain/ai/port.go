package ai

import "context"

// Client analyzes raw log content and returns the result as a JSON
// string in the log-analysis wire shape.
type Client interface {
	Analyze(ctx context.Context, logContent string) (string, error)
}
