package ai

import (
	"context"
)

// FieldExtractor defines the contract for turning a free-text service
// description into structured listing suggestions.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type FieldExtractor interface {
	// ExtractFields analyzes description and returns the structured suggestion set.
	// On any failure it returns a nil result and a sentinel error; callers must
	// never merge a failed extraction into stored answers.
	ExtractFields(ctx context.Context, description string) (*ExtractionResult, error)
}
