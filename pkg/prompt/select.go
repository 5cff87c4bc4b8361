package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// selectModel represents the Bubble Tea model for single choice selection.
type selectModel struct {
	title    string
	items    []string
	cursor   int
	selected int
	quitting bool
}

// initialSelectModel creates a new select model with the cursor on defaultIndex.
func initialSelectModel(title string, items []string, defaultIndex int) selectModel {
	return selectModel{
		title:    title,
		items:    items,
		cursor:   defaultIndex,
		selected: -1,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.selected = m.cursor
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.items) - 1
	}

	return m, nil
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	if m.selected >= 0 {
		s.WriteString(fmt.Sprintf("%s %s\n", titleStyle.Render("? "+m.title), selectedStyle.Render(m.items[m.selected])))
		return s.String()
	}

	s.WriteString(titleStyle.Render("? "+m.title) + "\n")

	for i, item := range m.items {
		if m.cursor == i {
			s.WriteString(cursorStyle.Render("> "+item) + "\n")
			continue
		}
		s.WriteString("  " + item + "\n")
	}

	s.WriteString(helpStyle.Render("Use arrows to move, Enter to select, q to quit"))

	return s.String()
}

// runSelectProgram returns a selector running the Bubble Tea program on the given streams.
func runSelectProgram(in io.Reader, out io.Writer) func(model selectModel) (selectModel, error) {
	return func(model selectModel) (selectModel, error) {
		p := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))

		finalModel, err := p.Run()
		if err != nil {
			return selectModel{}, fmt.Errorf("%w: %w", ErrSelectionFailure, err)
		}

		// Cast to our model type
		result, ok := finalModel.(selectModel)
		if !ok {
			return selectModel{}, fmt.Errorf("%w: unexpected model type", ErrSelectionFailure)
		}

		return result, nil
	}
}
