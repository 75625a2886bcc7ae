// Package store keeps the per-user tracking records in memory. Persistence
// across restarts is deliberately out of scope; the store exists behind an
// interface so a database-backed implementation can replace it later without
// touching the tracker logic.
package store

import (
	"errors"
	"strconv"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/VShilovich/fitness-bot/models"
)

// ErrUserNotFound is returned when no record exists for the user id, i.e.
// onboarding has not completed for it.
var ErrUserNotFound = errors.New("user not found")

// Memory is a sharded in-memory user store. Concurrent operations on the
// same user id are serialized by the map's shard lock, which is held across
// the whole read-modify-write in Update; operations on different ids run in
// parallel (unless they happen to share a shard).
type Memory struct {
	records cmap.ConcurrentMap[string, models.UserRecord]
}

func NewMemory() *Memory {
	return &Memory{records: cmap.New[models.UserRecord]()}
}

// Get returns a copy of the user's record.
func (s *Memory) Get(userID int64) (models.UserRecord, error) {
	rec, ok := s.records.Get(key(userID))
	if !ok {
		return models.UserRecord{}, ErrUserNotFound
	}
	return rec, nil
}

// Put replaces the user's record wholesale. Used by onboarding finalize:
// any previously logged progress is wiped.
func (s *Memory) Put(userID int64, rec models.UserRecord) {
	s.records.Set(key(userID), rec)
}

// Update applies mutate to the current record under the shard lock and
// returns the resulting copy. The whole record is rewritten atomically, so
// two concurrent updates on the same id never interleave and a failed
// operation never leaves a half-applied record behind.
func (s *Memory) Update(userID int64, mutate func(*models.UserRecord)) (models.UserRecord, error) {
	k := key(userID)
	if !s.records.Has(k) {
		return models.UserRecord{}, ErrUserNotFound
	}

	updated := s.records.Upsert(k, models.UserRecord{}, func(exists bool, current, fresh models.UserRecord) models.UserRecord {
		if !exists {
			// Records are never removed, so after the Has check above the
			// entry is guaranteed to be present.
			return fresh
		}
		mutate(&current)
		return current
	})
	return updated, nil
}

// Count reports how many users have completed onboarding.
func (s *Memory) Count() int {
	return s.records.Count()
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
