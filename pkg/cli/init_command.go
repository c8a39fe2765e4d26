package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiranshivaraju/prodkit/pkg/console"
	"github.com/kiranshivaraju/prodkit/pkg/host"
	"github.com/kiranshivaraju/prodkit/pkg/installer"
	"github.com/kiranshivaraju/prodkit/pkg/logger"
)

var initLog = logger.New("cli:init_command")

// AIPlatformClaude is the only AI platform currently supported.
const AIPlatformClaude = "claude"

// aiPlatforms enumerates the valid --ai values.
var aiPlatforms = []string{AIPlatformClaude}

// terminalTypes enumerates the valid --terminal values across all platforms.
var terminalTypes = []string{"bash", "zsh", "fish", "powershell"}

// InitOptions carries the flag and argument values of one init invocation.
// Empty strings mean "ask interactively".
type InitOptions struct {
	ProjectName string
	AIPlatform  string
	Terminal    string
	Here        bool
	Force       bool
}

// NewInitCommand builds the init subcommand.
func NewInitCommand() *cobra.Command {
	opts := InitOptions{}

	cmd := &cobra.Command{
		Use:   "init [project_name]",
		Short: "Initialize prodkit in a new or existing project",
		Long: `Initialize prodkit in a new or existing project.

Examples:
  prodkit init my-project          # Create new project directory
  prodkit init . --ai claude       # Initialize in current directory
  prodkit init --here --ai claude  # Same as above`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.ProjectName = args[0]
			}
			return RunInit(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Here, "here", false, "Initialize in current directory")
	cmd.Flags().StringVar(&opts.AIPlatform, "ai", "", "AI platform (claude)")
	cmd.Flags().StringVar(&opts.Terminal, "terminal", "", "Terminal type (bash, zsh, fish, powershell)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite existing installation")

	return cmd
}

// RunInit drives the whole installation: detect the environment, resolve
// the configuration interactively, gate on the Claude CLI, then hand off to
// the installer. A declined confirmation returns nil (clean abort); a
// nonzero provisioning exit surfaces as *installer.ExitCodeError.
func RunInit(ctx context.Context, opts InitOptions) error {
	profile := host.Detect()
	initLog.Printf("Starting init: opts=%+v profile=%+v", opts, profile)

	console.PrintPanel("prodkit Initialization",
		"Welcome to prodkit!\nEnterprise product development workflow for AI coding agents")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	cfg, err := collectConfig(opts, profile, cwd)
	if err != nil {
		return err
	}

	// Claude gating: warn and ask before continuing without the CLI.
	if cfg.AIPlatform == AIPlatformClaude {
		if host.HasClaudeCLI() {
			fmt.Fprintln(os.Stderr, console.FormatSuccessMessage("Claude Code detected"))
		} else {
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage("Claude Code not detected"))
			fmt.Fprintln(os.Stderr, console.FormatDimMessage("  Make sure Claude Code is installed: https://claude.com/claude-code"))
			proceed, err := console.ConfirmAction("Continue anyway?", "", true)
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(os.Stderr, console.FormatWarningMessage("Installation cancelled"))
				return nil
			}
		}
	}

	// An existing target needs explicit consent unless forced or already
	// the working directory.
	targetExists := installer.TargetDirExists(cfg)
	if targetExists && !cfg.Here && !cfg.Force {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Directory already exists: %s", cfg.TargetDir)))
		proceed, err := console.ConfirmAction("Initialize prodkit in existing directory?", "", false)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage("Installation cancelled"))
			return nil
		}
	}

	if !targetExists {
		fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("Creating directory: %s", cfg.TargetDir)))
	}
	if err := installer.EnsureTargetDir(cfg); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Installing prodkit..."))
	fmt.Fprintln(os.Stderr)

	outcome, err := installer.New(profile).Run(ctx, cfg)
	if err != nil {
		return err
	}
	if !outcome.Succeeded {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("Installation failed with exit code %d", outcome.ExitCode)))
		return &installer.ExitCodeError{Code: outcome.ExitCode}
	}

	printInitSuccess(cfg)
	return nil
}

// collectConfig resolves every installation dimension, prompting only for
// the ones not supplied on the command line.
func collectConfig(opts InitOptions, profile host.Profile, cwd string) (installer.Config, error) {
	cfg := installer.Config{Here: opts.Here, Force: opts.Force}

	// Project name and target directory are coupled: --here and the "."
	// positional both pin the target to the working directory.
	projectName := opts.ProjectName
	switch {
	case opts.Here || projectName == ".":
		cfg.Here = true
	case projectName != "":
		fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("Creating new project: %s", projectName)))
	default:
		entered, err := console.PromptInputWithValidation(
			"Project name",
			"Defaults to the current directory name",
			filepath.Base(cwd),
			validateProjectName,
		)
		if err != nil {
			return installer.Config{}, err
		}
		projectName = strings.TrimSpace(entered)
		if projectName == "." {
			cfg.Here = true
		}
	}
	cfg.TargetDir, cfg.ProjectName = installer.ResolveTarget(cwd, projectName, cfg.Here)
	if cfg.Here {
		fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("Initializing in current directory: %s", cfg.TargetDir)))
	}

	// AI platform.
	platform, needPrompt, err := installer.ResolveChoice(opts.AIPlatform, aiPlatforms, AIPlatformClaude)
	if err != nil {
		return installer.Config{}, err
	}
	if needPrompt {
		platform, err = console.PromptSelect(
			"Which AI platform are you using?",
			"prodkit integrates with AI coding assistants for automated development",
			[]console.SelectOption{
				{Label: "Claude (Anthropic) - Claude Code CLI", Value: AIPlatformClaude},
			},
			platform,
		)
		if err != nil {
			return installer.Config{}, err
		}
	}
	cfg.AIPlatform = platform
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("AI platform: %s", platform)))

	// Terminal, seeded from the detected profile.
	terminal, needPrompt, err := installer.ResolveChoice(opts.Terminal, terminalTypes, string(profile.Terminal))
	if err != nil {
		return installer.Config{}, err
	}
	if needPrompt {
		terminal, err = console.PromptSelect(
			"Which terminal/shell are you using?",
			fmt.Sprintf("Detected: %s with %s", strings.ToUpper(string(profile.OS)), profile.Terminal),
			terminalChoices(profile.OS),
			terminal,
		)
		if err != nil {
			return installer.Config{}, err
		}
	}
	cfg.Terminal = host.Shell(terminal)
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Terminal: %s", terminal)))

	initLog.Printf("Resolved config: %+v", cfg)
	return cfg, nil
}

// terminalChoices returns the terminal menu for the detected OS.
func terminalChoices(osFamily host.OS) []console.SelectOption {
	if osFamily == host.OSWindows {
		return []console.SelectOption{
			{Label: "PowerShell", Value: "powershell"},
			{Label: "Bash (WSL/Git Bash)", Value: "bash"},
		}
	}
	return []console.SelectOption{
		{Label: "Bash", Value: "bash"},
		{Label: "Zsh", Value: "zsh"},
		{Label: "Fish", Value: "fish"},
	}
}

// validateProjectName rejects empty names and path separators; "." is
// allowed and means the current directory.
func validateProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if name != "." && strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("project name must not contain path separators")
	}
	return nil
}

func printInitSuccess(cfg installer.Config) {
	location := cfg.TargetDir
	cdTarget := cfg.TargetDir
	if cfg.Here {
		cdTarget = "."
	}
	console.PrintPanel("Installation Complete", fmt.Sprintf(
		"prodkit initialized successfully!\n\n"+
			"Project:     %s\n"+
			"Location:    %s\n"+
			"AI Platform: %s\n"+
			"Terminal:    %s\n\n"+
			"Next steps:\n"+
			"1. cd %s\n"+
			"2. Open in Claude Code\n"+
			"3. Run /prodkit.prd to start building your product!",
		cfg.ProjectName, location, cfg.AIPlatform, cfg.Terminal, cdTarget))
}
