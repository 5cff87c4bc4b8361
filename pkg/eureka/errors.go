// Package eureka provides the idea journaling flows and error definitions.
package eureka

import "errors"

// Error definitions for eureka package.
var (
	// Setup errors.
	ErrConfigDirCheck      = errors.New("failed to check config directory")
	ErrRepositoryPathInput = errors.New("failed to read repository path")
	ErrEditorSelection     = errors.New("failed to select editor")
	ErrEditorNameInput     = errors.New("failed to read editor name")

	// Capture errors.
	ErrIdeaSummaryInput = errors.New("failed to read idea summary")
	ErrConfigInvariant  = errors.New("configuration is incomplete, run eureka to finish setup")
	ErrCommitAndPush    = errors.New("failed to commit and push idea")

	// View errors.
	ErrRepositoryNotConfigured = errors.New("no path to repository found")
	ErrPagerNotFound           = errors.New("cannot locate pager executable on your system")
	ErrPagerLaunch             = errors.New("could not open idea file with pager")
)
