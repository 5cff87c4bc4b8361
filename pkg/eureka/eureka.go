package eureka

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=eureka.go -destination=mocks/eureka.gen.go -package=mocks

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/eureka/pkg/dependencies"
	"github.com/lerenn/eureka/pkg/editor"
	"github.com/lerenn/eureka/pkg/logger"
)

const (
	// NotesFileName is the file, relative to the idea repository, holding the ideas.
	NotesFileName = "README.md"
	// DefaultPager is the pager used to view the ideas.
	DefaultPager = "less"
)

// Eureka interface provides the idea journaling operations.
type Eureka interface {
	// Run classifies the configuration state and runs either the setup or the idea capture.
	Run() error
	// InputIdea captures an idea: summary prompt, editor, then commit and push.
	InputIdea() error
	// OpenIdeaFile shows the ideas file through a pager.
	OpenIdeaFile(opts ...OpenIdeaFileOpts) error
	// ClearRepo removes the repository path setting, if any.
	ClearRepo() error
	// ClearEditor removes the editor path setting, if any.
	ClearEditor() error
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewEurekaParams contains parameters for creating a new Eureka instance.
type NewEurekaParams struct {
	Dependencies *dependencies.Dependencies
}

type realEureka struct {
	deps *dependencies.Dependencies
}

// NewEureka creates a new Eureka instance.
func NewEureka(params NewEurekaParams) (Eureka, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realEureka{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (e *realEureka) VerbosePrint(msg string, args ...interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this Eureka instance.
func (e *realEureka) SetLogger(logger logger.Logger) {
	e.deps.Logger = logger
}

// editors returns an editor manager bound to the current dependencies.
func (e *realEureka) editors() *editor.Manager {
	return editor.NewManager(e.deps.FS, e.deps.Logger)
}

// NotesFilePath returns the path of the ideas file inside the repository.
func NotesFilePath(repoPath string) string {
	return filepath.Join(repoPath, NotesFileName)
}

// wrap prefixes err with a sentinel so callers can match both.
func wrap(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}
