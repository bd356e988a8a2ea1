package advice

import "os"

// Pick selects the advisor backend for this host: the Anthropic API when a
// key is present in the environment, otherwise the configured CLI. Neither
// choice is validated here — an absent CLI surfaces as Unavailable at call
// time, which is exactly the degradation the caller expects.
func Pick(command, model string) Advisor {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return NewAnthropicAdvisor(key, model)
	}
	return &ExecAdvisor{Command: command}
}
