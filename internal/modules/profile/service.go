// README: Profile gateway service: validates payloads, enforces ownership.
package profile

import (
	"context"
	"time"

	"kottage/internal/modules/schema"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Create validates the payload before any round-trip, then inserts the
// profile under the caller's identity. A second profile for the same
// identity fails with ErrConflict.
func (s *Service) Create(ctx context.Context, uid string, payload schema.ProfilePayload) (*Profile, error) {
	if verr := schema.ValidateProfile(payload); verr != nil {
		return nil, verr
	}
	p := &Profile{
		ID:          uid,
		FullName:    payload.FullName,
		Phone:       payload.Phone,
		Email:       payload.Email,
		HomeAddress: payload.HomeAddress,
		AvatarURL:   payload.AvatarURL,
		IsProvider:  payload.IsProvider,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	return s.store.Get(ctx, id)
}

// Update replaces the mutable profile fields. Only the owner may update.
func (s *Service) Update(ctx context.Context, uid, id string, payload schema.ProfilePayload) (*Profile, error) {
	if uid != id {
		return nil, ErrForbidden
	}
	if verr := schema.ValidateProfile(payload); verr != nil {
		return nil, verr
	}
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.FullName = payload.FullName
	existing.Phone = payload.Phone
	existing.Email = payload.Email
	existing.HomeAddress = payload.HomeAddress
	existing.AvatarURL = payload.AvatarURL
	existing.IsProvider = payload.IsProvider
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the profile. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, uid, id string) error {
	if uid != id {
		return ErrForbidden
	}
	return s.store.Delete(ctx, id)
}

// ListBookings returns the caller's bookings.
func (s *Service) ListBookings(ctx context.Context, uid string) ([]Booking, error) {
	return s.store.ListBookingsByProvider(ctx, uid)
}
