package git

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a temporary idea repository wired to a local bare remote.
type TestRepo struct {
	Path       string
	RemotePath string
}

// SetupTestRepo creates a temporary git repository with an initial commit and an
// "origin" remote pointing at a local bare repository.
func SetupTestRepo(t *testing.T) TestRepo {
	t.Helper()

	root := t.TempDir()
	repo := TestRepo{
		Path:       filepath.Join(root, "ideas"),
		RemotePath: filepath.Join(root, "remote.git"),
	}

	runGit(t, root, "init", "--bare", repo.RemotePath)
	runGit(t, root, "init", repo.Path)
	runGit(t, repo.Path, "config", "user.name", "Test User")
	runGit(t, repo.Path, "config", "user.email", "test@example.com")
	runGit(t, repo.Path, "config", "commit.gpgsign", "false")
	runGit(t, repo.Path, "remote", "add", DefaultRemote, repo.RemotePath)
	runGit(t, repo.Path, "commit", "--allow-empty", "-m", "Initial commit")

	return repo
}

// LastCommitMessage returns the subject of the latest commit reachable from ref in dir.
func LastCommitMessage(t *testing.T, dir, ref string) string {
	t.Helper()
	return runGit(t, dir, "log", "-1", "--format=%s", ref)
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v (output: %s)", strings.Join(args, " "), err, string(output))
	}
	return strings.TrimSpace(string(output))
}
