//go:build unit

package eureka

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRunState(t *testing.T) {
	tests := []struct {
		name          string
		repoPresent   bool
		editorPresent bool
		expected      RunState
	}{
		{
			name:          "nothing configured",
			repoPresent:   false,
			editorPresent: false,
			expected:      BothMissing,
		},
		{
			name:          "only editor configured",
			repoPresent:   false,
			editorPresent: true,
			expected:      RepoMissing,
		},
		{
			name:          "only repository configured",
			repoPresent:   true,
			editorPresent: false,
			expected:      EditorMissing,
		},
		{
			name:          "fully configured",
			repoPresent:   true,
			editorPresent: true,
			expected:      BothPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ClassifyRunState(tt.repoPresent, tt.editorPresent)
			assert.Equal(t, tt.expected, state)
			assert.Equal(t, !tt.repoPresent, state.repoMissing())
			assert.Equal(t, !tt.editorPresent, state.editorMissing())
		})
	}
}

func TestRunState_String(t *testing.T) {
	assert.Equal(t, "both-present", BothPresent.String())
	assert.Equal(t, "repo-missing", RepoMissing.String())
	assert.Equal(t, "editor-missing", EditorMissing.String())
	assert.Equal(t, "both-missing", BothMissing.String())
	assert.Equal(t, "unknown", RunState(12).String())
}
