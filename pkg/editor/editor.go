// Package editor discovers the text editors installed on the host and launches them.
package editor

import (
	"fmt"

	"github.com/lerenn/eureka/pkg/fs"
	"github.com/lerenn/eureka/pkg/logger"
)

// OtherOption is the menu entry letting the user type the name of any editor.
const OtherOption = "Other (provide name, e.g. 'emacs')"

// DefaultEditors are the editors probed during setup, in menu order.
var DefaultEditors = []string{"vim", "nano", "micro"}

// Candidate is an editor found on the host.
type Candidate struct {
	Name string
	Path string
}

// Manager locates and launches editors.
type Manager struct {
	fs     fs.FS
	logger logger.Logger
	names  []string
}

// NewManager creates a new editor manager probing DefaultEditors.
func NewManager(fs fs.FS, logger logger.Logger) *Manager {
	return &Manager{
		fs:     fs,
		logger: logger,
		names:  DefaultEditors,
	}
}

// Discover returns the default editors installed on the host, in probe order.
func (m *Manager) Discover() []Candidate {
	candidates := make([]Candidate, 0, len(m.names))
	for _, name := range m.names {
		path, err := m.fs.Which(name)
		if err != nil || path == "" {
			m.logger.Logf("Editor %s not found on host", name)
			continue
		}

		m.logger.Logf("Editor %s found at %s", name, path)
		candidates = append(candidates, Candidate{Name: name, Path: path})
	}
	return candidates
}

// Resolve returns the absolute path of the named editor.
func (m *Manager) Resolve(name string) (string, error) {
	path, err := m.fs.Which(name)
	if err != nil || path == "" {
		return "", fmt.Errorf("%w: %s", ErrEditorNotFound, name)
	}
	return path, nil
}

// Open runs the editor on filePath and blocks until it exits, returning its exit code.
func (m *Manager) Open(editorPath, filePath string) (int, error) {
	m.logger.Logf("Opening %s with %s", filePath, editorPath)

	code, err := m.fs.ExecuteInteractive(editorPath, filePath)
	if err != nil {
		return code, fmt.Errorf("%w: file [%s], editor binary [%s]: %w", ErrEditorLaunch, filePath, editorPath, err)
	}

	m.logger.Logf("Editor exited with code %d", code)
	return code, nil
}

// MenuItems returns the candidate names in order followed by OtherOption.
func MenuItems(candidates []Candidate) []string {
	items := make([]string, 0, len(candidates)+1)
	for _, candidate := range candidates {
		items = append(items, candidate.Name)
	}
	return append(items, OtherOption)
}
