// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrAddFailed    = errors.New("git add failed")
	ErrCommitFailed = errors.New("git commit failed")
	ErrPushFailed   = errors.New("git push failed")
)
