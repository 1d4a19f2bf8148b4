package backend

import (
	"context"
	"fmt"

	"career-advisor-bot/internal/chat"
	"career-advisor-bot/pkg/gemini"
)

// Adapter wraps the Gemini client behind the narrow last-resort interface the
// intent router needs: given a conversation history and a new message, return
// a reply or fail.
type Adapter struct {
	client    *gemini.Client
	available bool
}

// New creates an Adapter. A nil client is a valid, non-fatal state: every
// Continue call then fails with ErrUnavailable and the router answers with a
// fixed apology instead.
func New(client *gemini.Client) *Adapter {
	return &Adapter{
		client:    client,
		available: client != nil,
	}
}

// Available reports whether a backend credential was configured at startup.
func (a *Adapter) Available() bool {
	return a.available
}

// Continue sends the user's message together with the accumulated history to
// the backend and returns its reply verbatim.
func (a *Adapter) Continue(ctx context.Context, history []chat.Turn, message string) (string, error) {
	if !a.available {
		return "", ErrUnavailable
	}

	contents := make([]gemini.Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, gemini.Content{
			Role:  string(turn.Role),
			Parts: []gemini.Part{{Text: turn.Text}},
		})
	}
	contents = append(contents, gemini.Content{
		Role:  string(chat.RoleUser),
		Parts: []gemini.Part{{Text: message}},
	})

	resp, err := a.client.GenerateContent(ctx, gemini.GenerateRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCallFailed, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrCallFailed)
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
