package advice

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the advice CLI invoked when none is configured.
const DefaultCommand = "copilot"

// ExecAdvisor shells out to an advice-capable CLI. Newer CLIs take the
// prompt via an `explain` subcommand; older ones via a -p flag, which is
// tried as a fallback when explain is rejected.
type ExecAdvisor struct {
	// Command is the binary name to invoke. Empty means DefaultCommand.
	Command string
}

// Advise runs the CLI under ctx. The subprocess is started with
// exec.CommandContext, so cancelling ctx kills it rather than leaving it
// running unobserved.
func (e *ExecAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	bin := e.Command
	if bin == "" {
		bin = DefaultCommand
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("advice command %q not found on this host: %w", bin, err)
	}

	out, stderr, err := runOnce(ctx, path, "explain", prompt)
	if err != nil && ctx.Err() == nil {
		hint := strings.ToLower(stderr)
		if strings.Contains(hint, "unknown") || strings.Contains(hint, "invalid") {
			out, stderr, err = runOnce(ctx, path, "-p", prompt)
		}
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		if stderr = strings.TrimSpace(stderr); stderr != "" {
			return "", fmt.Errorf("advice command failed: %s", stderr)
		}
		return "", fmt.Errorf("advice command failed: %w", err)
	}
	return out, nil
}

func runOnce(ctx context.Context, path string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, path, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
