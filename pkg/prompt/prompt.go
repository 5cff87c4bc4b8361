package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForRepositoryPath prompts the user for the absolute path of the idea repository.
	PromptForRepositoryPath() (string, error)

	// PromptForEditorName prompts the user for the name of an editor binary.
	PromptForEditorName() (string, error)

	// PromptForIdeaSummary prompts the user for a one line summary of the idea.
	PromptForIdeaSummary() (string, error)

	// PromptSelect prompts the user to pick one of items and returns its index.
	PromptSelect(title string, items []string, defaultIndex int) (int, error)
}

type realPrompt struct {
	reader    *bufio.Reader
	out       io.Writer
	header    *color.Color
	runSelect func(model selectModel) (selectModel, error)
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		header:    color.New(color.FgCyan, color.Bold),
		runSelect: runSelectProgram(os.Stdin, os.Stdout),
	}
}

// PromptForRepositoryPath prompts the user for the absolute path of the idea repository.
func (p *realPrompt) PromptForRepositoryPath() (string, error) {
	return p.promptLine("Absolute path to your idea repo")
}

// PromptForEditorName prompts the user for the name of an editor binary.
func (p *realPrompt) PromptForEditorName() (string, error) {
	return p.promptLine("Name of your editor (e.g. emacs)")
}

// PromptForIdeaSummary prompts the user for a one line summary of the idea.
func (p *realPrompt) PromptForIdeaSummary() (string, error) {
	return p.promptLine(">> Idea summary")
}

// PromptSelect prompts the user to pick one of items and returns its index.
func (p *realPrompt) PromptSelect(title string, items []string, defaultIndex int) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoChoices
	}
	if defaultIndex < 0 || defaultIndex >= len(items) {
		return -1, fmt.Errorf("%w: %d (%d choices)", ErrInvalidDefault, defaultIndex, len(items))
	}

	model, err := p.runSelect(initialSelectModel(title, items, defaultIndex))
	if err != nil {
		return -1, err
	}

	// Check if user quit without selecting
	if model.selected < 0 {
		return -1, ErrNoSelection
	}

	return model.selected, nil
}

// promptLine prints a header and reads one trimmed line.
func (p *realPrompt) promptLine(header string) (string, error) {
	_, _ = p.header.Fprintf(p.out, "%s: ", header)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		// Accept a last line without trailing newline
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	return strings.TrimSpace(input), nil
}
