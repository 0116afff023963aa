// README: Per-section completion derivation.
package form

import (
	"kottage/internal/modules/schema"
)

// SectionComplete reports whether one wizard section is complete given the
// current answers snapshot and address list sizes.
//
// Standard sections: every mandatory field must hold a present, non-nil,
// non-empty-string value. Zero mandatory fields means vacuously complete.
// Address-backed sections ignore answers entirely and complete as soon as
// either address list has a record.
func SectionComplete(def *schema.SectionDefinition, answers Answers, locationCount, travelCount int) bool {
	if def == nil {
		return false
	}
	if def.AddressBacked {
		return locationCount > 0 || travelCount > 0
	}
	for _, f := range def.Fields {
		if !f.Mandatory {
			continue
		}
		if !answerPresent(answers, f.Key) {
			return false
		}
	}
	return true
}

func answerPresent(answers Answers, key string) bool {
	if answers == nil {
		return false
	}
	v, ok := answers[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}
