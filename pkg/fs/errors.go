// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// Process errors.
	ErrCommandLaunch = errors.New("failed to launch command")
)
