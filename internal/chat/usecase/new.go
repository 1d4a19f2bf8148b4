package usecase

import (
	"context"
	"math/rand"

	"career-advisor-bot/internal/chat"
	"career-advisor-bot/internal/chat/session"
	"career-advisor-bot/internal/knowledge"
	"career-advisor-bot/pkg/log"
)

// Backend is the last-resort generative capability behind the intent rules.
// Declared here (not in the backend package) so tests can inject a fake.
type Backend interface {
	Available() bool
	Continue(ctx context.Context, history []chat.Turn, message string) (string, error)
}

type implUseCase struct {
	l        log.Logger
	kb       *knowledge.Base
	sessions *session.Store
	backend  Backend

	// pick selects among equivalent reply templates. Randomized for
	// conversational variety only; tests inject a fixed chooser.
	pick func(n int) int

	rules []intentRule
}

// Ensure implUseCase implements chat.UseCase.
var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat usecase.
func New(l log.Logger, kb *knowledge.Base, sessions *session.Store, be Backend) *implUseCase {
	uc := &implUseCase{
		l:        l,
		kb:       kb,
		sessions: sessions,
		backend:  be,
		pick:     rand.Intn,
	}
	uc.rules = []intentRule{
		{IntentGreeting, uc.greet},
		{IntentNameCapture, uc.captureName},
		{IntentCategoryListing, uc.listCategories},
		{IntentSkillLookup, uc.lookupSkill},
		{IntentBackendFallback, uc.backendFallback},
	}
	return uc
}

// SetChooser overrides the reply template chooser for deterministic tests.
func (uc *implUseCase) SetChooser(pick func(n int) int) {
	uc.pick = pick
}
