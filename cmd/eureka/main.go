// Package main provides the command-line interface for the eureka application.
package main

import (
	"os"

	"github.com/lerenn/eureka/cmd/eureka/internal/cli"
	"github.com/lerenn/eureka/pkg/eureka"
	"github.com/lerenn/eureka/pkg/printer"
	"github.com/spf13/cobra"
)

// rootFlags holds the flags of the root command.
type rootFlags struct {
	view        bool
	clearRepo   bool
	clearEditor bool
	pager       string
}

func createRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "eureka",
		Short: "Eureka - input and store your ideas without leaving the terminal",
		Long: `Capture ideas from the terminal. Ideas are written in your editor to the README.md
of a git repository, then committed with the idea summary as message and pushed.

Examples:
  eureka
  eureka --view
  eureka --clear-repo --clear-editor`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			e, err := cli.NewEureka()
			if err != nil {
				return err
			}
			return dispatch(e, flags)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.view, "view", "v", false, "View ideas with a pager, less unless --pager is set")
	rootCmd.Flags().BoolVar(&flags.clearRepo, "clear-repo", false, "Clear the stored path to your idea repo")
	rootCmd.Flags().BoolVar(&flags.clearEditor, "clear-editor", false, "Clear the stored path to your idea editor")
	rootCmd.Flags().StringVar(&flags.pager, "pager", eureka.DefaultPager, "Pager used by --view")

	rootCmd.PersistentFlags().BoolVar(&cli.Verbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cli.ConfigDir, "config-dir", "", "Specify a custom config directory")

	rootCmd.AddCommand(createConfigCmd())

	return rootCmd
}

// dispatch routes the root command: clear flags first, then view, then the setup or capture run.
func dispatch(e eureka.Eureka, flags rootFlags) error {
	if flags.clearRepo || flags.clearEditor {
		if flags.clearRepo {
			if err := e.ClearRepo(); err != nil {
				return err
			}
		}
		if flags.clearEditor {
			if err := e.ClearEditor(); err != nil {
				return err
			}
		}
		return nil
	}

	if flags.view {
		return e.OpenIdeaFile(eureka.OpenIdeaFileOpts{Pager: flags.pager})
	}

	return e.Run()
}

func main() {
	if err := createRootCmd().Execute(); err != nil {
		printer.NewPrinter().PrintError(err)
		os.Exit(1)
	}
}
