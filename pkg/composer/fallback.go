package composer

import (
	"context"
	"fmt"
)

// FallbackComposer produces deterministic template messages. It backs the
// Gemini composer when the API is unavailable and is the only composer when
// no API key is configured.
type FallbackComposer struct{}

// NewFallbackComposer creates a new FallbackComposer
func NewFallbackComposer() *FallbackComposer {
	return &FallbackComposer{}
}

func (f *FallbackComposer) Compose(ctx context.Context, sourceUsername, targetUsername string) (string, string, error) {
	title := fmt.Sprintf("%s misses you 💌", sourceUsername)
	description := fmt.Sprintf("Hey %s, %s is thinking about you right now", targetUsername, sourceUsername)
	return title, description, nil
}
