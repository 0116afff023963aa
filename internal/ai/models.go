// README: Extraction result types, sentinel errors, and response decoding.
package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidInput means the caller supplied an empty or unusable description.
	ErrInvalidInput = errors.New("invalid description")
	// ErrUpstreamUnavailable means the model call failed (network, auth, quota, timeout).
	ErrUpstreamUnavailable = errors.New("model unavailable")
	// ErrMalformedResponse means the model replied with text we could not parse
	// into the expected shape. Not retried automatically; the user re-submits.
	ErrMalformedResponse = errors.New("malformed model response")
)

// Classification summarizes the service described by the provider.
type Classification struct {
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	ServiceFocus string `json:"service_focus"`
}

// ExtractionResult is the structured suggestion set derived from a free-text
// service description. ExtractedFields maps the fixed field names from the
// prompt to extracted values; nil means the model found nothing.
type ExtractionResult struct {
	Classification       Classification     `json:"classification"`
	ExtractedFields      map[string]*string `json:"extracted_fields"`
	RecommendedFields    []string           `json:"recommended_fields"`
	MissingMandatoryInfo []string           `json:"missing_mandatory_info"`
}

// decodeExtraction parses cleaned JSON text into an ExtractionResult and
// normalizes it so the result invariants hold regardless of what the model
// actually produced:
//   - missing_mandatory_info is exactly the set of extracted keys with a nil value
//   - recommended_fields never overlaps extracted field keys
func decodeExtraction(data []byte) (*ExtractionResult, error) {
	var raw struct {
		Classification    *Classification `json:"classification"`
		ExtractedFields   map[string]any  `json:"extracted_fields"`
		RecommendedFields []string        `json:"recommended_fields"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw.Classification == nil || raw.ExtractedFields == nil {
		return nil, fmt.Errorf("%w: missing classification or extracted_fields", ErrMalformedResponse)
	}

	res := &ExtractionResult{
		Classification:  *raw.Classification,
		ExtractedFields: make(map[string]*string, len(raw.ExtractedFields)),
	}
	for key, val := range raw.ExtractedFields {
		switch v := val.(type) {
		case nil:
			res.ExtractedFields[key] = nil
		case string:
			s := v
			res.ExtractedFields[key] = &s
		default:
			// Models occasionally emit numbers or booleans for textual
			// fields; coerce rather than reject the whole document.
			s := fmt.Sprintf("%v", v)
			res.ExtractedFields[key] = &s
		}
	}

	for _, f := range raw.RecommendedFields {
		if _, taken := res.ExtractedFields[f]; taken {
			continue
		}
		res.RecommendedFields = append(res.RecommendedFields, f)
	}

	for key, val := range res.ExtractedFields {
		if val == nil {
			res.MissingMandatoryInfo = append(res.MissingMandatoryInfo, key)
		}
	}
	sort.Strings(res.MissingMandatoryInfo)

	return res, nil
}
