package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"career-advisor-bot/internal/chat"
)

// Store is the process-wide session registry, keyed by user id. The reference
// behavior is "never destroyed"; here the registry is capacity-bounded with an
// idle TTL so an open endpoint cannot grow memory without limit.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *chat.Session]
}

// NewStore creates a session store holding at most maxUsers sessions, each
// evicted after idleTTL without access. idleTTL <= 0 disables expiry.
func NewStore(maxUsers int, idleTTL time.Duration) *Store {
	return &Store{
		sessions: expirable.NewLRU[string, *chat.Session](maxUsers, nil, idleTTL),
	}
}

// GetOrCreate returns the session for the given user id, creating it on first
// contact. Safe for concurrent use; two racing first contacts resolve to the
// same session.
func (st *Store) GetOrCreate(userID string) *chat.Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if sess, ok := st.sessions.Get(userID); ok {
		return sess
	}

	sess := &chat.Session{UserID: userID}
	st.sessions.Add(userID, sess)
	return sess
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions.Len()
}
