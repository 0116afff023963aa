// README: Address list operations with the home-address exclusivity invariant.
package address

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List returns all records of one list in insertion order.
func (s *Service) List(ctx context.Context, uid string, kind ListKind) ([]Record, error) {
	return s.store.Load(ctx, uid, kind)
}

// Counts returns the sizes of both lists. Satisfies form.AddressCounter.
func (s *Service) Counts(ctx context.Context, uid string) (int, int, error) {
	loc, err := s.store.Load(ctx, uid, ListLocation)
	if err != nil {
		return 0, 0, err
	}
	travel, err := s.store.Load(ctx, uid, ListTravel)
	if err != nil {
		return 0, 0, err
	}
	return len(loc), len(travel), nil
}

// Add appends a new record with a fresh unique id. A record added as home
// on the location list displaces any existing home there; the travel list
// has no home concept and forces IsHome off.
func (s *Service) Add(ctx context.Context, uid string, kind ListKind, data NewRecordData) (*Record, error) {
	if strings.TrimSpace(data.Line1) == "" {
		return nil, ErrBadRequest
	}
	list, err := s.store.Load(ctx, uid, kind)
	if err != nil {
		return nil, err
	}

	rec := Record{
		ID:      s.newID(list),
		Line1:   data.Line1,
		Line2:   data.Line2,
		City:    data.City,
		Zip:     data.Zip,
		Country: data.Country,
		IsHome:  data.IsHome && kind == ListLocation,
		Enabled: true,
		Radius:  data.Radius,
	}
	if rec.IsHome {
		for i := range list {
			list[i].IsHome = false
		}
	}
	list = append(list, rec)

	if err := s.store.Save(ctx, uid, kind, list); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update applies a partial patch to the record with the given id.
// Unknown ids fail with ErrNotFound. A patch that sets IsHome true on the
// location list re-establishes exclusivity.
func (s *Service) Update(ctx context.Context, uid string, kind ListKind, id int64, patch Patch) (*Record, error) {
	list, err := s.store.Load(ctx, uid, kind)
	if err != nil {
		return nil, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	rec := &list[idx]
	if patch.Line1 != nil {
		rec.Line1 = *patch.Line1
	}
	if patch.Line2 != nil {
		rec.Line2 = *patch.Line2
	}
	if patch.City != nil {
		rec.City = *patch.City
	}
	if patch.Zip != nil {
		rec.Zip = *patch.Zip
	}
	if patch.Country != nil {
		rec.Country = *patch.Country
	}
	if patch.Enabled != nil {
		rec.Enabled = *patch.Enabled
	}
	if patch.Radius != nil {
		rec.Radius = patch.Radius
	}
	if patch.IsHome != nil && kind == ListLocation {
		if *patch.IsHome {
			for i := range list {
				list[i].IsHome = i == idx
			}
		} else {
			rec.IsHome = false
		}
	}

	if err := s.store.Save(ctx, uid, kind, list); err != nil {
		return nil, err
	}
	out := list[idx]
	return &out, nil
}

// Remove deletes exactly the matching record; ordering of the remainder is
// preserved. No cascading effects.
func (s *Service) Remove(ctx context.Context, uid string, kind ListKind, id int64) error {
	list, err := s.store.Load(ctx, uid, kind)
	if err != nil {
		return err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return ErrNotFound
	}
	list = append(list[:idx], list[idx+1:]...)
	return s.store.Save(ctx, uid, kind, list)
}

// ToggleEnabled flips Enabled on the target record; IsHome is untouched.
func (s *Service) ToggleEnabled(ctx context.Context, uid string, kind ListKind, id int64) (*Record, error) {
	list, err := s.store.Load(ctx, uid, kind)
	if err != nil {
		return nil, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	list[idx].Enabled = !list[idx].Enabled
	if err := s.store.Save(ctx, uid, kind, list); err != nil {
		return nil, err
	}
	out := list[idx]
	return &out, nil
}

// SetHome makes the target the only home record in its list. Calling it on
// the record that is already home clears the flag, leaving no home at all.
// The at-most-one-home invariant holds after every return.
func (s *Service) SetHome(ctx context.Context, uid string, kind ListKind, id int64) (*Record, error) {
	if kind != ListLocation {
		return nil, ErrBadRequest
	}
	list, err := s.store.Load(ctx, uid, kind)
	if err != nil {
		return nil, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	wasHome := list[idx].IsHome
	for i := range list {
		list[i].IsHome = false
	}
	list[idx].IsHome = !wasHome

	if err := s.store.Save(ctx, uid, kind, list); err != nil {
		return nil, err
	}
	out := list[idx]
	return &out, nil
}

// newID returns a creation-timestamp id, bumped past any collision with
// existing ids in the list.
func (s *Service) newID(list []Record) int64 {
	id := s.now().UnixMilli()
	for {
		if indexOf(list, id) < 0 {
			return id
		}
		id++
	}
}

func indexOf(list []Record, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
