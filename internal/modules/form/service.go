// README: Form state operations: load, get, set, merge, replace, and extraction merge.
package form

import (
	"context"
	"fmt"

	"kottage/internal/ai"
	"kottage/internal/modules/schema"
)

// AddressCounter reports how many address records exist per list so the
// service-location section can derive completion without touching answers.
type AddressCounter interface {
	Counts(ctx context.Context, uid string) (location, travel int, err error)
}

type Service struct {
	store     *Store
	addresses AddressCounter
}

func NewService(store *Store, addresses AddressCounter) *Service {
	return &Service{store: store, addresses: addresses}
}

// Load returns all stored answers for uid.
func (s *Service) Load(ctx context.Context, uid string) (Answers, error) {
	return s.store.Load(ctx, uid)
}

// Get returns one answer value; the second return reports presence.
func (s *Service) Get(ctx context.Context, uid, key string) (any, bool, error) {
	a, err := s.store.Load(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	v, ok := a[key]
	return v, ok, nil
}

// Set merges a single field and persists immediately.
func (s *Service) Set(ctx context.Context, uid, key string, value any) (Answers, error) {
	return s.Merge(ctx, uid, Answers{key: value})
}

// Merge shallow-merges partial into the stored answers and persists.
// Values replace wholesale; nested objects are not merged deep.
func (s *Service) Merge(ctx context.Context, uid string, partial Answers) (Answers, error) {
	if verr := schema.ValidateAnswers(partial); verr != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, verr)
	}
	a, err := s.store.Load(ctx, uid)
	if err != nil {
		return nil, err
	}
	for k, v := range partial {
		a[k] = v
	}
	if err := s.store.Save(ctx, uid, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ReplaceAll overwrites the stored answers wholesale.
func (s *Service) ReplaceAll(ctx context.Context, uid string, answers Answers) error {
	if answers == nil {
		answers = Answers{}
	}
	if verr := schema.ValidateAnswers(answers); verr != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, verr)
	}
	return s.store.Save(ctx, uid, answers)
}

// extractionFieldMap routes extraction output onto registry field keys.
var extractionFieldMap = map[string]string{
	"business_name":       "shopName",
	"booking_policy":      "booking-policy-details",
	"payment_policy":      "payment-policy-details",
	"cancellation_policy": "cancellation-policy-details",
	"late_policy":         "late-policy-details",
}

// MergeExtraction applies a successful extraction onto the stored answers.
// Null extracted fields are skipped, never erased into existing answers.
// Callers must not invoke this with a failed extraction; the ai package
// returns nil results on any failure precisely so there is nothing to merge.
func (s *Service) MergeExtraction(ctx context.Context, uid string, res *ai.ExtractionResult) (Answers, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil extraction result", ErrBadRequest)
	}

	partial := Answers{}
	if res.Classification.Category != "" {
		partial["serviceCategory"] = res.Classification.Category
	}
	if res.Classification.Subcategory != "" {
		partial["serviceSubcategory"] = res.Classification.Subcategory
	}
	if res.Classification.ServiceFocus != "" {
		partial["shopDescription"] = res.Classification.ServiceFocus
	}
	for src, dst := range extractionFieldMap {
		if v := res.ExtractedFields[src]; v != nil && *v != "" {
			partial[dst] = *v
		}
	}
	if len(partial) == 0 {
		return s.store.Load(ctx, uid)
	}
	return s.Merge(ctx, uid, partial)
}

// Progress recomputes completion for every section from the current
// snapshot. No caching: section and field counts are bounded, so
// recompute-on-read is both correct and cheap.
func (s *Service) Progress(ctx context.Context, uid string) (*Progress, error) {
	answers, err := s.store.Load(ctx, uid)
	if err != nil {
		return nil, err
	}

	locCount, travelCount := 0, 0
	if s.addresses != nil {
		// Missing address data defaults the location section to incomplete
		// rather than failing the whole progress read.
		if lc, tc, err := s.addresses.Counts(ctx, uid); err == nil {
			locCount, travelCount = lc, tc
		}
	}

	p := &Progress{}
	for _, def := range schema.Sections() {
		complete := SectionComplete(&def, answers, locCount, travelCount)
		p.Sections = append(p.Sections, SectionProgress{Section: def.Key, Complete: complete})
		p.Total++
		if complete {
			p.Completed++
		}
	}
	return p, nil
}
