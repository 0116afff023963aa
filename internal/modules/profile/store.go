// README: Profile store backed by PostgreSQL.
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, p *Profile) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO profiles (
            id, full_name, phone, email, home_address, avatar_url, is_provider, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.FullName, p.Phone, p.Email, p.HomeAddress, p.AvatarURL, p.IsProvider, p.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*Profile, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, full_name, phone, email, home_address, avatar_url, is_provider, created_at
        FROM profiles
        WHERE id = $1`, id,
	)

	var p Profile
	var email, homeAddress, avatarURL sql.NullString
	err := row.Scan(&p.ID, &p.FullName, &p.Phone, &email, &homeAddress, &avatarURL, &p.IsProvider, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select profile: %w", err)
	}
	p.Email = toStringPtr(email)
	p.HomeAddress = toStringPtr(homeAddress)
	p.AvatarURL = toStringPtr(avatarURL)
	return &p, nil
}

func (s *Store) Update(ctx context.Context, p *Profile) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE profiles
        SET full_name = $1, phone = $2, email = $3, home_address = $4, avatar_url = $5, is_provider = $6
        WHERE id = $7`,
		p.FullName, p.Phone, p.Email, p.HomeAddress, p.AvatarURL, p.IsProvider, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListBookingsByProvider(ctx context.Context, providerID string) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, provider_id, customer_name, service_name, scheduled_at, status, created_at
        FROM bookings
        WHERE provider_id = $1
        ORDER BY scheduled_at`, providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	bookings := []Booking{}
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.ProviderID, &b.CustomerName, &b.ServiceName, &b.ScheduledAt, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

func toStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
