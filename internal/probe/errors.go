package probe

import "errors"

var (
	// ErrMismatch is returned when the dashboard disagrees with the finals table.
	ErrMismatch = errors.New("dashboard does not match finals table")
	// ErrUnexpectedStatus is returned for a non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
