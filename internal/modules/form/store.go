// README: Answer persistence backed by Redis, one JSON blob per provider.
package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// answersKeyPrefix mirrors the storage key the web client used for the
// setup form, scoped per provider UID.
const answersKeyPrefix = "kottageSetupForm:"

type Store struct {
	redis *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{redis: rdb}
}

// Load returns the persisted answers for uid, or an empty map when none exist.
func (s *Store) Load(ctx context.Context, uid string) (Answers, error) {
	raw, err := s.redis.Get(ctx, answersKeyPrefix+uid).Bytes()
	if errors.Is(err, redis.Nil) {
		return Answers{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	var a Answers
	if err := json.Unmarshal(raw, &a); err != nil {
		// Legacy or hand-edited blob; start fresh rather than wedge the wizard.
		return Answers{}, nil
	}
	if a == nil {
		a = Answers{}
	}
	return a, nil
}

// Save overwrites the stored blob. Last write wins; a provider edits
// their own wizard from one session at a time.
func (s *Store) Save(ctx context.Context, uid string, a Answers) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := s.redis.Set(ctx, answersKeyPrefix+uid, raw, 0).Err(); err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	return nil
}
