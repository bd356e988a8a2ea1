package advice

import "testing"

func TestPickPrefersAPIWhenKeyPresent(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	if _, ok := Pick("copilot", "").(*AnthropicAdvisor); !ok {
		t.Fatal("Pick should return the API advisor when a key is set")
	}
}

func TestPickFallsBackToCLI(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	a, ok := Pick("my-cli", "").(*ExecAdvisor)
	if !ok {
		t.Fatal("Pick should return the CLI advisor without a key")
	}
	if a.Command != "my-cli" {
		t.Errorf("Command = %q", a.Command)
	}
}
