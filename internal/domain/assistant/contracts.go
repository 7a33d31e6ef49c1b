package assistant

import (
	"context"
)

// Reply is the result of a single generation round.
type Reply struct {
	Response       string
	Language       string
	ContextTags    []string
	ResponseTimeMs int64
	TokensUsed     int
}

// Generator produces an assistant reply for a farmer message. Implementations
// wrap a remote inference backend; callers are expected to fall back to the
// response catalog when Generate returns an error.
type Generator interface {
	// Generate produces a reply for message in the given language ("en" or
	// "hi"). contextLines carries prior conversation context; only the most
	// recent lines are used.
	Generate(ctx context.Context, message, language string, contextLines []string) (*Reply, error)
}
