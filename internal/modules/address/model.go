// README: Address record types, list kinds, and sentinel errors.
package address

import "errors"

var (
	// ErrNotFound is returned when no record in the list has the given id.
	ErrNotFound = errors.New("address not found")
	// ErrBadRequest means an unknown list kind or unusable record data.
	ErrBadRequest = errors.New("bad request")
)

// ListKind names the two independent address lists a provider maintains.
type ListKind string

const (
	// ListLocation holds places the provider offers the service at.
	ListLocation ListKind = "location"
	// ListTravel holds areas the provider travels to. It has no home concept.
	ListTravel ListKind = "travel"
)

// ParseListKind validates a kind string from the request path.
func ParseListKind(s string) (ListKind, error) {
	switch ListKind(s) {
	case ListLocation:
		return ListLocation, nil
	case ListTravel:
		return ListTravel, nil
	default:
		return "", ErrBadRequest
	}
}

// Record is one stored address. IDs are monotonic per list (creation
// timestamp in unix millis, bumped on collision).
type Record struct {
	ID      int64    `json:"id"`
	Line1   string   `json:"line1"`
	Line2   string   `json:"line2"`
	City    string   `json:"city"`
	Zip     string   `json:"zip"`
	Country string   `json:"country"`
	IsHome  bool     `json:"isHome"`
	Enabled bool     `json:"enabled"`
	Radius  *float64 `json:"radius,omitempty"`
}

// NewRecordData carries caller-supplied fields for Add.
type NewRecordData struct {
	Line1   string   `json:"line1"`
	Line2   string   `json:"line2"`
	City    string   `json:"city"`
	Zip     string   `json:"zip"`
	Country string   `json:"country"`
	IsHome  bool     `json:"isHome"`
	Radius  *float64 `json:"radius,omitempty"`
}

// Patch carries partial updates; nil fields are left untouched.
type Patch struct {
	Line1   *string  `json:"line1,omitempty"`
	Line2   *string  `json:"line2,omitempty"`
	City    *string  `json:"city,omitempty"`
	Zip     *string  `json:"zip,omitempty"`
	Country *string  `json:"country,omitempty"`
	IsHome  *bool    `json:"isHome,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
	Radius  *float64 `json:"radius,omitempty"`
}
