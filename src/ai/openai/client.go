package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/truthlens/truthlens/src/ai/core"
)

const defaultModelName = "gpt-4o-mini"

func init() {
	core.RegisterProvider("openai", newClient, "gpt4o-mini")
}

type client struct {
	api      *goopenai.Client
	defaults core.Options
}

func newClient(cfg core.FactoryConfig) (core.Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("openai: API key not configured")
	}

	model := cfg.Model
	if strings.TrimSpace(model) == "" {
		model = defaultModelName
	}

	return &client{
		api: goopenai.NewClient(cfg.OpenAIKey),
		defaults: core.Options{
			Model:               model,
			Temperature:         orFloat(cfg.Temperature, 0.2),
			MaxCompletionTokens: cfg.MaxCompletionTokens,
			SystemPrompt:        cfg.SystemPrompt,
		},
	}, nil
}

func (c *client) Complete(ctx context.Context, prompt string, opts core.Options) (string, error) {
	merged := c.merge(opts)

	messages := make([]goopenai.ChatCompletionMessage, 0, 2)
	if strings.TrimSpace(merged.SystemPrompt) != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: merged.SystemPrompt,
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := goopenai.ChatCompletionRequest{
		Model:       merged.Model,
		Messages:    messages,
		Temperature: float32(merged.Temperature),
	}
	if merged.MaxCompletionTokens > 0 {
		req.MaxTokens = merged.MaxCompletionTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no response choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *client) merge(opts core.Options) core.Options {
	out := c.defaults
	if strings.TrimSpace(opts.Model) != "" {
		out.Model = opts.Model
	}
	if opts.Temperature != 0 {
		out.Temperature = opts.Temperature
	}
	if opts.MaxCompletionTokens != 0 {
		out.MaxCompletionTokens = opts.MaxCompletionTokens
	}
	if strings.TrimSpace(opts.SystemPrompt) != "" {
		out.SystemPrompt = opts.SystemPrompt
	}
	return out
}

func orFloat(v, d float64) float64 {
	if v != 0 {
		return v
	}
	return d
}
