package eureka

import (
	"fmt"

	"github.com/lerenn/eureka/pkg/config"
)

// OpenIdeaFileOpts contains optional parameters for OpenIdeaFile.
type OpenIdeaFileOpts struct {
	// Pager is the name or path of the pager binary, DefaultPager when empty.
	Pager string
}

// OpenIdeaFile shows the ideas file through a pager.
func (e *realEureka) OpenIdeaFile(opts ...OpenIdeaFileOpts) error {
	pager := DefaultPager
	if len(opts) > 0 && opts[0].Pager != "" {
		pager = opts[0].Pager
	}

	repoPath, err := e.deps.Config.Read(config.RepositoryPath)
	if err != nil {
		return wrap(ErrRepositoryNotConfigured, err)
	}

	pagerPath, err := e.deps.FS.Which(pager)
	if err != nil || pagerPath == "" {
		return fmt.Errorf("%w: %s", ErrPagerNotFound, pager)
	}

	notesPath := NotesFilePath(repoPath)
	e.VerbosePrint("Opening %s with %s", notesPath, pagerPath)

	if _, err := e.deps.FS.ExecuteInteractive(pagerPath, notesPath); err != nil {
		return fmt.Errorf("%w [%s]: %w", ErrPagerLaunch, notesPath, err)
	}

	return nil
}
