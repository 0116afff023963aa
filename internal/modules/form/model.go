// README: Wizard answer types and sentinel errors.
package form

import "errors"

// Answers maps field keys (global namespace across sections) to
// JSON-compatible values: string, bool, float64, or nil.
type Answers map[string]any

var (
	// ErrSerialization is a programmer error: an answer value that cannot
	// be marshalled. Well-formed JSON-compatible values never trigger it.
	ErrSerialization = errors.New("answers not serializable")
	// ErrBadRequest means the caller supplied an invalid key or value.
	ErrBadRequest = errors.New("bad request")
)

// SectionProgress is the derived completion state for one section.
type SectionProgress struct {
	Section  string `json:"section"`
	Complete bool   `json:"complete"`
}

// Progress aggregates per-section completion across the wizard.
type Progress struct {
	Sections  []SectionProgress `json:"sections"`
	Completed int               `json:"completed"`
	Total     int               `json:"total"`
}
