package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kiranshivaraju/prodkit/pkg/assets"
	"github.com/kiranshivaraju/prodkit/pkg/host"
	"github.com/kiranshivaraju/prodkit/pkg/logger"
)

var invokeLog = logger.New("installer:invoke")

// Outcome reports how a provisioning run ended.
type Outcome struct {
	ExitCode  int
	Succeeded bool
}

// ExitCodeError carries a nonzero provisioning exit code to the process
// boundary, where it becomes the CLI's own exit code.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("installation failed with exit code %d", e.Code)
}

// Invoker runs the provisioning script for one resolved configuration.
type Invoker struct {
	Profile host.Profile
	Stdout  io.Writer
	Stderr  io.Writer

	// stage materializes the provisioning payload and returns the script
	// path plus a cleanup function. Swapped out by tests.
	stage func() (string, func(), error)
}

// New creates an invoker that streams script output to the real stdio.
func New(profile host.Profile) *Invoker {
	return &Invoker{
		Profile: profile,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		stage:   stagePayload,
	}
}

// stagePayload writes the embedded payload into a fresh temp directory.
func stagePayload() (string, func(), error) {
	dir, err := os.MkdirTemp("", "prodkit-install-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	scriptPath, err := assets.Materialize(dir)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	return scriptPath, cleanup, nil
}

// EnsureTargetDir creates the target directory, including missing parents.
// Creating an already-existing directory is a no-op, so repeated forced
// installs never fail on pre-existing state alone.
func EnsureTargetDir(cfg Config) error {
	if err := os.MkdirAll(cfg.TargetDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", cfg.TargetDir, err)
	}
	return nil
}

// TargetDirExists reports whether the target directory is already present.
func TargetDirExists(cfg Config) bool {
	info, err := os.Stat(cfg.TargetDir)
	return err == nil && info.IsDir()
}

// selectShell picks the shell for the child process: powershell only on
// windows with a powershell terminal, a POSIX shell everywhere else.
func selectShell(osFamily host.OS, terminal host.Shell) string {
	if osFamily == host.OSWindows && terminal == host.ShellPowerShell {
		return "powershell"
	}
	return "bash"
}

// Run invokes the provisioning script under the environment contract with
// the target directory as working directory. Script output streams through
// to the invoker's writers. A spawn failure is returned as an error; a
// nonzero script exit is a non-error Outcome for the caller to interpret.
func (inv *Invoker) Run(ctx context.Context, cfg Config) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}

	scriptPath, cleanup, err := inv.stage()
	if err != nil {
		return Outcome{}, err
	}
	defer cleanup()

	shell := selectShell(inv.Profile.OS, cfg.Terminal)
	invokeLog.Printf("Running provisioning script: shell=%s script=%s dir=%s", shell, scriptPath, cfg.TargetDir)

	cmd := exec.CommandContext(ctx, shell, scriptPath)
	cmd.Dir = cfg.TargetDir
	cmd.Env = overlayEnviron(os.Environ(), cfg.EnvironmentMap())
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			invokeLog.Printf("Provisioning script exited with code %d", code)
			return Outcome{ExitCode: code, Succeeded: false}, nil
		}
		return Outcome{}, fmt.Errorf("failed to run provisioning script: %w", err)
	}

	invokeLog.Print("Provisioning script succeeded")
	return Outcome{ExitCode: 0, Succeeded: true}, nil
}
