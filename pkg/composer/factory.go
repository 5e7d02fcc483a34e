package composer

import (
	"context"
	"log"

	"miss-you-backend/pkg/gemini"
)

// NewComposer creates the message composer for the given Gemini API key.
// With a key it returns a Gemini composer that degrades to the deterministic
// fallback on any generation error; without one it returns the fallback alone.
func NewComposer(geminiAPIKey string) Composer {
	fallback := NewFallbackComposer()
	if geminiAPIKey == "" {
		log.Println("[Composer] GEMINI_API_KEY not set, using fallback messages")
		return fallback
	}
	return &degradingComposer{
		primary:  gemini.NewGeminiService(geminiAPIKey),
		fallback: fallback,
	}
}

// degradingComposer tries the primary composer and swallows its errors,
// substituting the fallback text instead.
type degradingComposer struct {
	primary  Composer
	fallback Composer
}

func (d *degradingComposer) Compose(ctx context.Context, sourceUsername, targetUsername string) (string, string, error) {
	title, description, err := d.primary.Compose(ctx, sourceUsername, targetUsername)
	if err != nil {
		log.Printf("[Composer] Generation failed, using fallback message: %v", err)
		return d.fallback.Compose(ctx, sourceUsername, targetUsername)
	}
	return title, description, nil
}
