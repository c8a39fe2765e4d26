package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kiranshivaraju/prodkit/pkg/console"
	"github.com/kiranshivaraju/prodkit/pkg/logger"
	"github.com/kiranshivaraju/prodkit/pkg/project"
)

var listLog = logger.New("cli:list_command")

// NewListCommand builds the list subcommand.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available prodkit commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunList()
		},
	}
}

// RunList renders the command catalog as a table. An absent or empty
// catalog prints guidance and still exits 0.
func RunList() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	fsys, source, err := project.ResolveCommandsFS(cwd)
	if err != nil {
		listLog.Printf("No commands directory: %v", err)
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage("prodkit commands not found. Have you run 'prodkit init'?"))
		return nil
	}

	entries, err := project.LoadCatalog(fsys)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage("No prodkit commands found"))
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, entry.Description})
	}

	fmt.Fprintln(os.Stdout, console.RenderTable(console.TableConfig{
		Title:   fmt.Sprintf("Available prodkit Commands (%s)", source),
		Headers: []string{"Command", "Description"},
		Rows:    rows,
	}))
	fmt.Fprintln(os.Stderr, console.FormatDimMessage("Run these commands in Claude Code after running 'prodkit init'"))
	return nil
}
