// README: Profile and booking records plus sentinel errors.
package profile

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("profile not found")
	ErrConflict  = errors.New("profile already exists")
	ErrForbidden = errors.New("not the profile owner")
)

// Profile is the stored provider/customer identity record. The id is the
// identity provider's user id, so one identity maps to at most one profile.
type Profile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	Email       *string   `json:"email"`
	HomeAddress *string   `json:"home_address"`
	AvatarURL   *string   `json:"avatar_url"`
	IsProvider  bool      `json:"is_provider"`
	CreatedAt   time.Time `json:"created_at"`
}

// Booking is one scheduled service engagement for a provider.
type Booking struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
