// Package cli provides the command-line interface for prodkit.
//
// Each command lives in its own *_command.go file with a New*Command
// constructor and a Run* function that carries the actual behavior, so the
// logic stays testable without going through cobra. User-facing output goes
// through pkg/console; only tabular data is written to stdout, everything
// conversational goes to stderr.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiranshivaraju/prodkit/pkg/console"
)

// Package-level version information, injected at build time through
// SetVersionInfo.
var version = "dev"

// SetVersionInfo sets the version reported by the version command.
func SetVersionInfo(v string) {
	version = v
}

// GetVersion returns the current version.
func GetVersion() string {
	return version
}

// NewRootCommand builds the prodkit root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prodkit",
		Short: "Enterprise product development workflow for AI coding agents",
		Long: `prodkit provisions a product development workflow scaffold into a project
directory: slash-command templates, a project configuration file and the
directory layout your AI coding assistant works from.

Start with 'prodkit init' to set up a project, then run the installed
commands inside your assistant.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewStatusCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand reports the tool's own version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show prodkit version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console.PrintPanel("prodkit",
				fmt.Sprintf("Version: %s\nEnterprise product development workflow framework", GetVersion()))
			return nil
		},
	}
}
