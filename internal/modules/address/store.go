// README: Address list persistence backed by Redis, one JSON blob per list.
package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key names mirror the storage keys the web client used, scoped per UID.
const (
	locationKeyPrefix = "location_addresses:"
	travelKeyPrefix   = "travel_addresses:"
)

type Store struct {
	redis *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{redis: rdb}
}

func listKey(uid string, kind ListKind) string {
	if kind == ListTravel {
		return travelKeyPrefix + uid
	}
	return locationKeyPrefix + uid
}

// Load returns the records of one list in insertion order, empty when absent.
func (s *Store) Load(ctx context.Context, uid string, kind ListKind) ([]Record, error) {
	raw, err := s.redis.Get(ctx, listKey(uid, kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s addresses: %w", kind, err)
	}
	var list []Record
	if err := json.Unmarshal(raw, &list); err != nil {
		return []Record{}, nil
	}
	return list, nil
}

// Save overwrites one list wholesale. Last write wins.
func (s *Store) Save(ctx context.Context, uid string, kind ListKind, list []Record) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal %s addresses: %w", kind, err)
	}
	if err := s.redis.Set(ctx, listKey(uid, kind), raw, 0).Err(); err != nil {
		return fmt.Errorf("save %s addresses: %w", kind, err)
	}
	return nil
}
