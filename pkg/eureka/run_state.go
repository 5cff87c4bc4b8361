package eureka

import "github.com/lerenn/eureka/pkg/config"

// RunState classifies which settings are present when eureka starts.
type RunState int

const (
	// BothPresent means setup is complete.
	BothPresent RunState = iota
	// RepoMissing means only the repository path is missing.
	RepoMissing
	// EditorMissing means only the editor path is missing.
	EditorMissing
	// BothMissing means eureka runs for the first time.
	BothMissing
)

// String returns a human readable name of the state.
func (s RunState) String() string {
	switch s {
	case BothPresent:
		return "both-present"
	case RepoMissing:
		return "repo-missing"
	case EditorMissing:
		return "editor-missing"
	case BothMissing:
		return "both-missing"
	default:
		return "unknown"
	}
}

// ClassifyRunState derives the run state from the presence of each setting.
func ClassifyRunState(repoPresent, editorPresent bool) RunState {
	switch {
	case repoPresent && editorPresent:
		return BothPresent
	case editorPresent:
		return RepoMissing
	case repoPresent:
		return EditorMissing
	default:
		return BothMissing
	}
}

// repoMissing reports whether the repository path has to be acquired.
func (s RunState) repoMissing() bool {
	return s == RepoMissing || s == BothMissing
}

// editorMissing reports whether the editor path has to be acquired.
func (s RunState) editorMissing() bool {
	return s == EditorMissing || s == BothMissing
}

// classifyRunState checks each setting independently.
func (e *realEureka) classifyRunState() RunState {
	repoPresent := e.deps.Config.Exists(config.RepositoryPath)
	editorPresent := e.deps.Config.Exists(config.EditorPath)
	return ClassifyRunState(repoPresent, editorPresent)
}
