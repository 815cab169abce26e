package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"
)

// Client implements llm.Client using OpenAI chat completions.
type Client struct {
	client *gopenai.Client
	model  string
}

// NewClient constructs an OpenAI client. baseURL may be empty to use the
// public API endpoint, or point at a compatible local server.
func NewClient(baseURL, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}

	config := gopenai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		config.BaseURL = baseURL
	}

	return &Client{
		client: gopenai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Complete returns the generated text for the prompt.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai response missing choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("openai response empty content")
	}
	return content, nil
}
