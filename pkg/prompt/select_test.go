//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func pressKeys(m selectModel, keys ...tea.KeyMsg) selectModel {
	for _, key := range keys {
		next, _ := m.Update(key)
		m = next.(selectModel)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSelectModel_Navigation(t *testing.T) {
	items := []string{"vim", "nano", "micro", "Other"}

	tests := []struct {
		name           string
		keys           []tea.KeyMsg
		expectedCursor int
	}{
		{
			name:           "default cursor",
			keys:           nil,
			expectedCursor: 0,
		},
		{
			name:           "down arrow",
			keys:           []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}},
			expectedCursor: 2,
		},
		{
			name:           "cursor stops at the last item",
			keys:           []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('j'), runeKey('j'), runeKey('j')},
			expectedCursor: 3,
		},
		{
			name:           "cursor stops at the first item",
			keys:           []tea.KeyMsg{{Type: tea.KeyUp}, runeKey('k')},
			expectedCursor: 0,
		},
		{
			name:           "jump to the end",
			keys:           []tea.KeyMsg{runeKey('G')},
			expectedCursor: 3,
		},
		{
			name:           "jump back home",
			keys:           []tea.KeyMsg{runeKey('G'), runeKey('g')},
			expectedCursor: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressKeys(initialSelectModel("Editor", items, 0), tt.keys...)
			assert.Equal(t, tt.expectedCursor, m.cursor)
			assert.Equal(t, -1, m.selected)
		})
	}
}

func TestSelectModel_Enter(t *testing.T) {
	m := initialSelectModel("Editor", []string{"vim", "nano", "Other"}, 0)

	m = pressKeys(m, tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(selectModel)

	assert.Equal(t, 1, m.selected)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "nano")
}

func TestSelectModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}, runeKey('q')} {
		m := initialSelectModel("Editor", []string{"Other"}, 0)

		next, cmd := m.Update(key)
		m = next.(selectModel)

		assert.True(t, m.quitting)
		assert.Equal(t, -1, m.selected)
		assert.NotNil(t, cmd)
		assert.Empty(t, m.View())
	}
}

func TestSelectModel_View(t *testing.T) {
	m := initialSelectModel("Editor", []string{"vim", "Other (provide name, e.g. 'emacs')"}, 1)

	view := m.View()
	assert.Contains(t, view, "? Editor")
	assert.Contains(t, view, "  vim")
	assert.Contains(t, view, "> Other (provide name, e.g. 'emacs')")
}

// TestSelectModel_TeaModel verifies the model can be cast back after running as a tea.Model.
func TestSelectModel_TeaModel(t *testing.T) {
	model := initialSelectModel("Editor", []string{"vim"}, 0)

	var teaModel tea.Model = model
	castModel, ok := teaModel.(selectModel)
	assert.True(t, ok, "Model should be castable to selectModel")
	assert.Equal(t, model.items, castModel.items)
	assert.Nil(t, castModel.Init())
}
