package bot

import (
	"sync"

	"github.com/VShilovich/fitness-bot/models"
)

// Dialog states of the per-user finite-state machine.
const (
	stateIdle = iota
	stateAwaitingWeight
	stateAwaitingHeight
	stateAwaitingAge
	stateAwaitingActivity
	stateAwaitingCity
	stateAwaitingFoodGrams
)

// session holds one user's in-flight dialog: which answer the bot is waiting
// for, the partially collected profile and the pending food log. Owned by
// the transport layer; the core never blocks waiting for the next message.
// An abandoned dialog leaves at most this one slot, overwritten on the next
// command.
type session struct {
	state   int
	draft   models.Profile
	pending *models.PendingFoodLog
}

type sessions struct {
	mu   sync.Mutex
	byID map[int64]session
}

func newSessions() *sessions {
	return &sessions{byID: make(map[int64]session)}
}

func (s *sessions) get(userID int64) session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[userID]
}

func (s *sessions) set(userID int64, sess session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[userID] = sess
}

func (s *sessions) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, userID)
}
