package eureka

import (
	"github.com/lerenn/eureka/pkg/config"
)

// InputIdea captures an idea: summary prompt, editor, then commit and push.
// The editor exit code is not checked before committing.
func (e *realEureka) InputIdea() error {
	summary, err := e.deps.Prompt.PromptForIdeaSummary()
	if err != nil {
		return wrap(ErrIdeaSummaryInput, err)
	}

	editorPath, err := e.deps.Config.Read(config.EditorPath)
	if err != nil {
		return wrap(ErrConfigInvariant, err)
	}

	repoPath, err := e.deps.Config.Read(config.RepositoryPath)
	if err != nil {
		return wrap(ErrConfigInvariant, err)
	}

	notesPath := NotesFilePath(repoPath)
	code, err := e.editors().Open(editorPath, notesPath)
	if err != nil {
		return err
	}
	if code != 0 {
		e.VerbosePrint("Editor exited with code %d, committing anyway", code)
	}

	if err := e.deps.Git.CommitAndPush(repoPath, summary); err != nil {
		return wrap(ErrCommitAndPush, err)
	}

	e.VerbosePrint("Idea committed and pushed from %s", repoPath)
	return nil
}
