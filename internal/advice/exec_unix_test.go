//go:build unix

package advice

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-cli")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecAdvisorExplainSubcommand(t *testing.T) {
	cli := writeScript(t, `
if [ "$1" = "explain" ]; then
  echo "advice: stretch your legs"
  exit 0
fi
echo "unexpected args" >&2
exit 1
`)
	a := &ExecAdvisor{Command: cli}
	out, err := a.Advise(context.Background(), "idle prompt")
	if err != nil {
		t.Fatal(err)
	}
	if out != "advice: stretch your legs\n" {
		t.Errorf("out = %q", out)
	}
}

func TestExecAdvisorFallsBackToPromptFlag(t *testing.T) {
	cli := writeScript(t, `
if [ "$1" = "explain" ]; then
  echo "unknown command: explain" >&2
  exit 1
fi
if [ "$1" = "-p" ]; then
  echo "legacy advice"
  exit 0
fi
exit 1
`)
	a := &ExecAdvisor{Command: cli}
	out, err := a.Advise(context.Background(), "idle prompt")
	if err != nil {
		t.Fatal(err)
	}
	if out != "legacy advice\n" {
		t.Errorf("out = %q", out)
	}
}

func TestExecAdvisorSurfacesStderr(t *testing.T) {
	cli := writeScript(t, `
echo "not signed in" >&2
exit 1
`)
	a := &ExecAdvisor{Command: cli}
	_, err := a.Advise(context.Background(), "idle prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "advice command failed: not signed in" {
		t.Errorf("err = %q", got)
	}
}
