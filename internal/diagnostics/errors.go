package diagnostics

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidContact = errors.New("invalid contact email")
)
