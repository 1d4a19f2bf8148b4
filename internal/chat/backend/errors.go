package backend

import "errors"

var (
	// ErrUnavailable indicates no backend credential was configured at
	// process start. Checked once at construction, never re-checked per call.
	ErrUnavailable = errors.New("generative backend not configured")

	// ErrCallFailed indicates the remote call errored (network, quota,
	// malformed response).
	ErrCallFailed = errors.New("generative backend call failed")
)
