package session_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"career-advisor-bot/internal/chat/session"
)

func TestStore_GetOrCreate(t *testing.T) {
	st := session.NewStore(10, 0)

	a := st.GetOrCreate("user-a")
	if a == nil || a.UserID != "user-a" {
		t.Fatalf("unexpected session: %+v", a)
	}

	// Same user resolves to the same session object.
	a.Name = "Asha"
	if again := st.GetOrCreate("user-a"); again != a {
		t.Error("expected identical session pointer for repeat user")
	}

	// Different users never share state.
	b := st.GetOrCreate("user-b")
	if b == a {
		t.Error("expected distinct sessions per user id")
	}
	if b.Name != "" {
		t.Errorf("session state leaked across users: %q", b.Name)
	}

	if st.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", st.Len())
	}
}

func TestStore_CapacityEviction(t *testing.T) {
	st := session.NewStore(2, 0)

	first := st.GetOrCreate("u1")
	first.Name = "First"
	st.GetOrCreate("u2")
	st.GetOrCreate("u3") // evicts u1

	if st.Len() != 2 {
		t.Fatalf("expected capacity-bounded store, got %d sessions", st.Len())
	}

	// u1 was evicted: a new contact starts a fresh session.
	if again := st.GetOrCreate("u1"); again.Name != "" {
		t.Errorf("expected fresh session after eviction, got name %q", again.Name)
	}
}

func TestStore_IdleExpiry(t *testing.T) {
	st := session.NewStore(10, 20*time.Millisecond)

	sess := st.GetOrCreate("u1")
	sess.Name = "Asha"

	time.Sleep(60 * time.Millisecond)

	if again := st.GetOrCreate("u1"); again.Name != "" {
		t.Errorf("expected expired session to be recreated, got name %q", again.Name)
	}
}

func TestStore_ConcurrentFirstContact(t *testing.T) {
	st := session.NewStore(100, 0)

	const goroutines = 32
	results := make([]any, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = st.GetOrCreate("same-user")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatal("racing first contacts produced different sessions")
		}
	}

	// Distinct users under concurrency stay isolated.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.GetOrCreate(fmt.Sprintf("user-%d", i))
		}(i)
	}
	wg.Wait()

	if st.Len() != goroutines+1 {
		t.Errorf("expected %d sessions, got %d", goroutines+1, st.Len())
	}
}
