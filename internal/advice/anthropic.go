package advice

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5"

// AnthropicAdvisor asks the Anthropic API directly instead of shelling out
// to a CLI. Selected by the factory when an API key is present in the
// environment.
type AnthropicAdvisor struct {
	client anthropic.Client
	model  string
}

// NewAnthropicAdvisor builds an advisor using apiKey and model.
func NewAnthropicAdvisor(apiKey, model string) *AnthropicAdvisor {
	if model == "" {
		model = DefaultModel
	}
	return &AnthropicAdvisor{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Advise sends the prompt as a single short message. The response is kept
// small — advice is a couple of sentences, not an essay.
func (a *AnthropicAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 300,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("advice API call failed: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}
