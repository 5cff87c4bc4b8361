package fs

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExecuteInteractive runs a command attached to the terminal and waits for it to exit.
func (f *realFS) ExecuteInteractive(command string, args ...string) (int, error) {
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	// The process ran to completion: report its status, let the caller decide
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return -1, fmt.Errorf("%w: %w", ErrCommandLaunch, err)
}
