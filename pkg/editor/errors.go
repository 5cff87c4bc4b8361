package editor

import "errors"

var (
	// ErrEditorNotFound is returned when an editor binary cannot be located on the host.
	ErrEditorNotFound = errors.New("could not find executable for editor")

	// ErrEditorLaunch is returned when the editor process cannot be started.
	ErrEditorLaunch = errors.New("unable to open file with editor")
)
