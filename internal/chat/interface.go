package chat

import (
	"context"

	"career-advisor-bot/internal/model"
)

// UseCase is the chat entry point consumed by the HTTP delivery layer.
type UseCase interface {
	// Respond resolves the caller's session, routes the message through the
	// intent rules, and always produces a textual reply unless the input
	// itself is invalid.
	Respond(ctx context.Context, sc model.Scope, input RespondInput) (RespondOutput, error)
}
