package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrInvalidInput = errors.New("message and user_id are required")
)
