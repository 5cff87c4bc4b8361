//go:build integration

package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGit_Commit(t *testing.T) {
	git := NewGit()
	repo := SetupTestRepo(t)

	// Create a test file and add it to staging
	testFile := "README.md"
	err := os.WriteFile(filepath.Join(repo.Path, testFile), []byte("# Ideas\n"), 0644)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = git.Add(repo.Path, testFile)
	if err != nil {
		t.Fatalf("Expected no error adding file: %v", err)
	}

	// Test creating a commit
	commitMessage := "Test commit message"
	err = git.Commit(repo.Path, commitMessage)
	if err != nil {
		t.Fatalf("Expected no error creating commit: %v", err)
	}

	if got := LastCommitMessage(t, repo.Path, "HEAD"); got != commitMessage {
		t.Errorf("Expected commit message '%s' in log, got: %s", commitMessage, got)
	}

	// Nothing staged still produces a commit
	err = git.Commit(repo.Path, "Nothing changed")
	if err != nil {
		t.Errorf("Expected no error committing with empty staging area: %v", err)
	}

	// An empty message is accepted
	err = git.Commit(repo.Path, "")
	if err != nil {
		t.Errorf("Expected no error committing with empty message: %v", err)
	}

	// Test in non-existent directory
	err = git.Commit("/non/existent/directory", "test message")
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
	if !errors.Is(err, ErrCommitFailed) {
		t.Errorf("Expected ErrCommitFailed, got: %v", err)
	}
}
