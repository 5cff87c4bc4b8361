package git

import (
	"fmt"
	"os/exec"
)

// Push pushes the current HEAD to the specified remote.
func (g *realGit) Push(repoPath, remote string) error {
	cmd := exec.Command("git", "push", remote, "HEAD")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %w (command: git push %s HEAD, output: %s)",
			ErrPushFailed, err, remote, string(output))
	}
	return nil
}
