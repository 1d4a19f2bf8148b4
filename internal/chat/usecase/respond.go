package usecase

import (
	"context"

	"career-advisor-bot/internal/chat"
	"career-advisor-bot/internal/model"
)

// Respond is the chat entry point: it resolves the caller's session, runs the
// intent rules in priority order, and returns the first reply produced.
// Every non-error path yields some textual reply.
func (uc *implUseCase) Respond(ctx context.Context, sc model.Scope, input chat.RespondInput) (chat.RespondOutput, error) {
	if input.Message == "" || sc.UserID == "" {
		return chat.RespondOutput{}, chat.ErrInvalidInput
	}

	sess := uc.sessions.GetOrCreate(sc.UserID)

	// Serialize turns per user id: concurrent requests for the same user
	// would otherwise interleave history appends.
	sess.Lock()
	defer sess.Unlock()

	in := newTurnInput(input.Message)

	for _, rule := range uc.rules {
		if reply, ok := rule.handle(ctx, sess, in); ok {
			uc.l.Infof(ctx, "chat usecase: user=%s intent=%s", sc.UserID, rule.intent)
			return chat.RespondOutput{Reply: reply}, nil
		}
	}

	// Unreachable while the backend fallback terminates the rule list, but
	// the contract is "always answer with text".
	return chat.RespondOutput{Reply: ReplyUnsure}, nil
}
