package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kiranshivaraju/prodkit/pkg/console"
	"github.com/kiranshivaraju/prodkit/pkg/project"
)

// NewStatusCommand builds the status subcommand.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show prodkit project status and configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunStatus()
		},
	}
}

// RunStatus prints one row per installation artifact in the current
// directory. Missing pieces are rows, not errors: status always exits 0.
func RunStatus() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	console.PrintPanel("prodkit Project Status", "")
	state := project.Inspect(cwd)

	printFoundRow(project.ProdkitDir+" directory", state.ProdkitDirFound)
	printFoundRow(project.ClaudeDir+" directory", state.ClaudeDirFound)

	switch {
	case !state.ConfigFound:
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(project.ConfigFile+": Not found"))
	case state.ConfigError != nil:
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("%s: %v", project.ConfigFile, state.ConfigError)))
	default:
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(project.ConfigFile+": Found"))
		fmt.Fprintln(os.Stderr, console.FormatProgressMessage("Project name: "+displayValue(state.ProjectName)))
		fmt.Fprintln(os.Stderr, console.FormatProgressMessage("Current sprint: "+displaySprint(state.CurrentSprint)))
	}

	fmt.Fprintln(os.Stderr)
	return nil
}

func printFoundRow(label string, found bool) {
	if found {
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(label+": Found"))
	} else {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(label+": Not found - run 'prodkit init'"))
	}
}

func displayValue(value string) string {
	if value == "" {
		return "Not set"
	}
	return value
}

func displaySprint(sprint string) string {
	if sprint == "" {
		return "Not set"
	}
	return "v" + sprint
}
