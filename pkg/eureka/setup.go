package eureka

import (
	"fmt"

	"github.com/lerenn/eureka/pkg/config"
	"github.com/lerenn/eureka/pkg/editor"
)

// setupRepositoryPath prompts until a non-empty repository path is entered, then saves it.
func (e *realEureka) setupRepositoryPath() error {
	var repoPath string
	for repoPath == "" {
		input, err := e.deps.Prompt.PromptForRepositoryPath()
		if err != nil {
			return wrap(ErrRepositoryPathInput, err)
		}
		repoPath = input
	}

	e.VerbosePrint("Saving repository path %s", repoPath)
	return e.deps.Config.Write(config.RepositoryPath, repoPath)
}

// setupEditorPath lets the user pick a detected editor, or name another one, then saves its path.
func (e *realEureka) setupEditorPath() error {
	e.deps.Printer.PrintEditorSelectionHeader()

	editors := e.editors()
	candidates := editors.Discover()
	items := editor.MenuItems(candidates)

	index, err := e.deps.Prompt.PromptSelect("Editor", items, 0)
	if err != nil {
		return wrap(ErrEditorSelection, err)
	}

	var editorPath string
	switch {
	case index == len(items)-1:
		name, err := e.deps.Prompt.PromptForEditorName()
		if err != nil {
			return wrap(ErrEditorNameInput, err)
		}

		editorPath, err = editors.Resolve(name)
		if err != nil {
			return fmt.Errorf("%w - aborting", err)
		}
	case index >= 0 && index < len(candidates):
		editorPath = candidates[index].Path
	default:
		return fmt.Errorf("%w: choice %d out of %d", ErrEditorSelection, index, len(items))
	}

	e.VerbosePrint("Saving editor path %s", editorPath)
	return e.deps.Config.Write(config.EditorPath, editorPath)
}
