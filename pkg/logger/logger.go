// Package logger provides component-scoped debug logging gated by the
// PRODKIT_DEBUG environment variable.
//
// Each source file creates its own logger with a "package:file" component
// name. Output is suppressed unless PRODKIT_DEBUG matches the component,
// so production runs stay quiet while any subsystem can be inspected:
//
//	PRODKIT_DEBUG=* prodkit init          # everything
//	PRODKIT_DEBUG=cli:* prodkit init      # the cli package only
//	PRODKIT_DEBUG=host:probe prodkit check
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// EnvVar is the environment variable controlling debug output.
const EnvVar = "PRODKIT_DEBUG"

// Logger writes debug messages for a single component.
type Logger struct {
	component string
	enabled   bool
	out       io.Writer
}

// New creates a logger for the given component name ("package:file").
// The returned logger is a no-op unless PRODKIT_DEBUG matches.
func New(component string) *Logger {
	return &Logger{
		component: component,
		enabled:   matches(os.Getenv(EnvVar), component),
		out:       os.Stderr,
	}
}

// Printf logs a formatted message when the component is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "[%s] %s\n", l.component, fmt.Sprintf(format, args...))
}

// Print logs a message when the component is enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "[%s] %s\n", l.component, fmt.Sprint(args...))
}

// Enabled reports whether this component's output is active.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// matches checks a comma-separated pattern list against a component name.
// A trailing "*" in a pattern matches any suffix.
func matches(patterns, component string) bool {
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if pattern == "*" || pattern == component {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok && strings.HasPrefix(component, prefix) {
			return true
		}
	}
	return false
}
