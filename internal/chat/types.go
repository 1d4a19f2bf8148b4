package chat

import "sync"

// Role tags a conversation turn with its speaker.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message in a conversation history.
type Turn struct {
	Role Role
	Text string
}

// Session is the per-user conversational state. It lives for the process
// lifetime (bounded by the store's eviction policy) and is mutated only by
// the chat usecase while holding its lock.
type Session struct {
	mu sync.Mutex

	UserID string

	// History is the append-only conversation log, also used as the
	// backend-side context on fallback turns.
	History []Turn

	// Name is the user's remembered name; overwritten on later capture.
	Name string

	// BackendInitialized flips once, the first time the backend fallback
	// fires, guarding the persona instructions from being re-issued.
	BackendInitialized bool
}

// Lock serializes turns for this session. Two concurrent requests for the
// same user id would otherwise interleave history appends.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Append adds turns to the conversation history.
func (s *Session) Append(turns ...Turn) {
	s.History = append(s.History, turns...)
}

// RespondInput is the entry-point request.
type RespondInput struct {
	Message string
}

// RespondOutput is the entry-point reply.
type RespondOutput struct {
	Reply string
}
