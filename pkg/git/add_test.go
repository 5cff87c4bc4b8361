//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestGit_Add(t *testing.T) {
	git := NewGit()
	repo := SetupTestRepo(t)

	// Create a test file
	testFile := "README.md"
	err := os.WriteFile(filepath.Join(repo.Path, testFile), []byte("# Ideas"), 0644)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Test adding a single file
	err = git.Add(repo.Path, testFile)
	if err != nil {
		t.Fatalf("Expected no error adding file: %v", err)
	}

	// Verify the file was added to staging area
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = repo.Path
	output, err := cmd.Output()
	if err != nil {
		t.Fatalf("Failed to check git status: %v", err)
	}

	if !strings.Contains(string(output), "A  "+testFile) {
		t.Errorf("Expected file %s to be staged, got status: %s", testFile, string(output))
	}

	// Test adding a non-existent file
	err = git.Add(repo.Path, "non-existent-file.txt")
	if err == nil {
		t.Error("Expected error when adding non-existent file")
	}

	// Test in non-existent directory
	err = git.Add("/non/existent/directory", testFile)
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
}
