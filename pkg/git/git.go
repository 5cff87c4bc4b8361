package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// DefaultRemote is the remote ideas are pushed to.
const DefaultRemote = "origin"

// Git interface provides Git command execution capabilities.
type Git interface {
	// Add adds files to the Git staging area.
	Add(repoPath string, files ...string) error

	// Commit creates a new commit with the specified message.
	Commit(repoPath, message string) error

	// Push pushes the current HEAD to the specified remote.
	Push(repoPath, remote string) error

	// CommitAndPush stages every change in the repository, commits it with the
	// specified message and pushes it to the default remote.
	CommitAndPush(repoPath, message string) error
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
