//go:build integration

package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFS_ExecuteInteractive(t *testing.T) {
	fs := NewFS()

	// Test executing a simple command that should succeed
	code, err := fs.ExecuteInteractive("true")
	assert.NoError(t, err)
	assert.Equal(t, 0, code)

	// A non-zero exit is reported through the code, not as an error
	code, err = fs.ExecuteInteractive("false")
	assert.NoError(t, err)
	assert.NotEqual(t, 0, code)

	code, err = fs.ExecuteInteractive("sh", "-c", "exit 3")
	assert.NoError(t, err)
	assert.Equal(t, 3, code)

	// Test executing a non-existing command (should fail)
	_, err = fs.ExecuteInteractive("/non/existing/command-xyz123")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandLaunch)
}
