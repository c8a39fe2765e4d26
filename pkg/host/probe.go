package host

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	gh "github.com/cli/go-gh/v2"

	"github.com/kiranshivaraju/prodkit/pkg/logger"
)

var probeLog = logger.New("host:probe")

// ClaudeCodeEnvVar marks that prodkit is running inside a Claude Code
// session, which implies the claude CLI without a PATH lookup.
const ClaudeCodeEnvVar = "CLAUDE_CODE"

// versionTimeout bounds each opportunistic --version invocation so a
// misbehaving tool cannot hang a probe.
const versionTimeout = 3 * time.Second

// Tool names probed by check and by the init gating step.
const (
	ToolGit     = "git"
	ToolClaude  = "claude"
	ToolGitHub  = "gh"
	ToolSpecify = "specify"
)

// ProbeResult reports the presence of one external tool. Version is empty
// when the tool is absent or its version output could not be captured.
type ProbeResult struct {
	Tool     string
	Label    string
	Required bool
	Present  bool
	Version  string
}

// lookPath is swapped out by tests to simulate PATH contents.
var lookPath = exec.LookPath

// ProbeToolchain checks for every external tool prodkit cares about, in a
// fixed order. Probes never fail: a missing tool is reported, not returned
// as an error.
func ProbeToolchain(ctx context.Context) []ProbeResult {
	results := []ProbeResult{
		probeTool(ctx, ToolGit, "Git", true),
		probeClaude(ctx),
		probeGitHubCLI(ctx),
		probeTool(ctx, ToolSpecify, "Speckit", false),
	}
	for _, r := range results {
		probeLog.Printf("Probe %s: present=%v version=%q", r.Tool, r.Present, r.Version)
	}
	return results
}

// HasClaudeCLI reports whether the Claude Code CLI is usable, either via the
// in-session marker variable or a PATH lookup.
func HasClaudeCLI() bool {
	if os.Getenv(ClaudeCodeEnvVar) != "" {
		return true
	}
	_, err := lookPath(ToolClaude)
	return err == nil
}

func probeTool(ctx context.Context, tool, label string, required bool) ProbeResult {
	result := ProbeResult{Tool: tool, Label: label, Required: required}
	if _, err := lookPath(tool); err != nil {
		return result
	}
	result.Present = true
	result.Version = captureVersion(ctx, tool)
	return result
}

func probeClaude(ctx context.Context) ProbeResult {
	result := ProbeResult{Tool: ToolClaude, Label: "Claude Code", Required: false}
	if os.Getenv(ClaudeCodeEnvVar) != "" {
		result.Present = true
		return result
	}
	if _, err := lookPath(ToolClaude); err != nil {
		return result
	}
	result.Present = true
	result.Version = captureVersion(ctx, ToolClaude)
	return result
}

// probeGitHubCLI goes through go-gh so the probe honors the same resolution
// rules as the gh extension ecosystem.
func probeGitHubCLI(ctx context.Context) ProbeResult {
	result := ProbeResult{Tool: ToolGitHub, Label: "GitHub CLI", Required: false}
	if _, err := lookPath(ToolGitHub); err != nil {
		return result
	}
	result.Present = true

	versionCtx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()
	stdout, _, err := gh.ExecContext(versionCtx, "--version")
	if err != nil {
		probeLog.Printf("gh --version failed: %v", err)
		return result
	}
	result.Version = firstLine(stdout.String())
	return result
}

// captureVersion runs "<tool> --version" and keeps the first output line.
// Any failure degrades to an empty version string.
func captureVersion(ctx context.Context, tool string) string {
	versionCtx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := exec.CommandContext(versionCtx, tool, "--version").Output()
	if err != nil {
		probeLog.Printf("%s --version failed: %v", tool, err)
		return ""
	}
	return firstLine(string(out))
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
