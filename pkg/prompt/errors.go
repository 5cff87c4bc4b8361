// Package prompt provides interactive prompt functionality for eureka.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInputClosed      = errors.New("input closed before a line was entered")
	ErrNoChoices        = errors.New("no choices available")
	ErrInvalidDefault   = errors.New("default choice out of range")
	ErrNoSelection      = errors.New("no selection made")
	ErrSelectionFailure = errors.New("failed to run selection program")
)
