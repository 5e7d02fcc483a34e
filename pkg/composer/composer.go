package composer

import "context"

// Composer produces the title/description pair for a "miss you" push when
// the client did not supply one. Implement this interface to add new text
// providers (Gemini, other LLMs, canned templates).
type Composer interface {
	Compose(ctx context.Context, sourceUsername, targetUsername string) (title, description string, err error)
}
