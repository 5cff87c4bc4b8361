package git

import (
	"fmt"
	"os/exec"
)

// Commit creates a new commit with the specified message.
// Empty messages and commits without changes are both accepted.
func (g *realGit) Commit(repoPath, message string) error {
	cmd := exec.Command("git", "commit", "--allow-empty", "--allow-empty-message", "-m", message)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %w (command: git commit -m %s, output: %s)",
			ErrCommitFailed, err, message, string(output))
	}
	return nil
}
