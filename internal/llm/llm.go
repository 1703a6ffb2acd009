// Package llm provides the prompt completion client used by storage drivers
// for record querying and summarization.
package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// Completer produces a text completion for a single prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DefaultModel is used when no model is configured.
const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

const defaultMaxTokens = 1024

// Anthropic is a Completer backed by the Anthropic Messages API. The SDK
// reads the API key from the environment.
type Anthropic struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropic returns an Anthropic completer. Empty model and non-positive
// maxTokens fall back to defaults.
func NewAnthropic(model string, maxTokens int) *Anthropic {
	c := anthropic.NewClient()
	m := anthropic.Model(model)
	if model == "" {
		m = DefaultModel
	}
	mt := int64(maxTokens)
	if mt <= 0 {
		mt = defaultMaxTokens
	}
	return &Anthropic{client: &c, model: m, maxTokens: mt}
}

// Complete sends prompt as a single user message and returns the joined
// assistant text blocks.
func (a *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var parts []string
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
			parts = append(parts, tb.Text)
		}
	}
	return strings.Join(parts, "\n"), nil
}
