// Command prodkit is an interactive installer for the prodkit product
// development workflow: it provisions command templates and project
// configuration into a target directory and inspects the result.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/kiranshivaraju/prodkit/pkg/cli"
	"github.com/kiranshivaraju/prodkit/pkg/console"
	"github.com/kiranshivaraju/prodkit/pkg/installer"
)

// version is overridden at release time via
// -ldflags "-X main.version=...".
var version = "dev"

// Exit codes at the process boundary. A nonzero provisioning exit code is
// passed through verbatim instead.
const (
	exitFatal       = 1
	exitInterrupted = 130
)

func main() {
	// A keyboard interrupt anywhere maps to one fixed exit code so callers
	// can tell "user stopped it" from real failures.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage("Interrupted by user"))
		os.Exit(exitInterrupted)
	}()

	cli.SetVersionInfo(version)

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor converts a command error into the process exit code, printing
// the error unless a more specific report already went out.
func exitCodeFor(err error) int {
	if console.IsUserAborted(err) {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage("Installation cancelled"))
		return exitInterrupted
	}

	var exitErr *installer.ExitCodeError
	if errors.As(err, &exitErr) {
		// The provisioning failure was already reported; preserve its code.
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("Error: %v", err)))
	return exitFatal
}
