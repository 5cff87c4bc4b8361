// Package printer provides the colorized user-facing messages of eureka.
package printer

import (
	"io"
	"os"

	"github.com/fatih/color"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=printer.go -destination=mocks/printer.gen.go -package=mocks

const welcomeBanner = `##########################################################
####                 First Time Setup                 ####
##########################################################

This tool requires you to have a repository with a README.md
in the root folder. The markdown file is where your ideas
will be stored.

Once first time setup has completed, simply run eureka again
to begin writing down ideas.
`

// Printer interface provides the messages shown around the interactive flows.
type Printer interface {
	// PrintWelcomeBanner prints the banner shown once, on the very first run.
	PrintWelcomeBanner()
	// PrintSetupComplete prints the message closing the setup flow.
	PrintSetupComplete()
	// PrintEditorSelectionHeader prints the header above the editor menu.
	PrintEditorSelectionHeader()
	// PrintError prints an error to the error stream.
	PrintError(err error)
}

type realPrinter struct {
	out    io.Writer
	errOut io.Writer

	banner  *color.Color
	success *color.Color
	header  *color.Color
	failure *color.Color
}

// NewPrinter creates a new Printer writing to stdout and stderr.
func NewPrinter() Printer {
	return NewWriterPrinter(os.Stdout, os.Stderr)
}

// NewWriterPrinter creates a new Printer writing to the given streams.
func NewWriterPrinter(out, errOut io.Writer) Printer {
	return &realPrinter{
		out:     out,
		errOut:  errOut,
		banner:  color.New(color.FgYellow),
		success: color.New(color.FgGreen, color.Bold),
		header:  color.New(color.FgCyan),
		failure: color.New(color.FgRed),
	}
}

// PrintWelcomeBanner prints the first time setup banner.
func (p *realPrinter) PrintWelcomeBanner() {
	_, _ = p.banner.Fprintln(p.out, welcomeBanner)
}

// PrintSetupComplete prints the message closing the setup flow.
func (p *realPrinter) PrintSetupComplete() {
	_, _ = p.success.Fprintln(p.out, "First time setup complete. Happy ideation!")
}

// PrintEditorSelectionHeader prints the header above the editor menu.
func (p *realPrinter) PrintEditorSelectionHeader() {
	_, _ = p.header.Fprintln(p.out, "What's your favorite editor?")
	_, _ = p.header.Fprintln(p.out, "(The path to the binary will be detected and saved)")
}

// PrintError prints an error to the error stream.
func (p *realPrinter) PrintError(err error) {
	if err == nil {
		return
	}
	_, _ = p.failure.Fprintf(p.errOut, "Error: %v\n", err)
}
