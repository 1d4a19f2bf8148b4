package model

// Scope carries the identity of the caller through usecase boundaries.
type Scope struct {
	UserID   string
	Username string
}
