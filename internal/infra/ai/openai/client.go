package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	domai "github.com/prav-arch/telelog/internal/domain/ai"
	"github.com/prav-arch/telelog/internal/infra/ai/prompt"
)

const maxTokens = 2048

// Client talks to an OpenAI-compatible chat-completion endpoint. The
// base URL normally points at the local LLM server rather than the
// OpenAI cloud.
type Client struct {
	*openai.Client
	Model string
}

func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Analyze sends log content to the model and returns the raw JSON
// analysis. Quota errors map to domain ai.ErrQuotaExceeded so callers
// can answer 429 without inspecting provider types.
func (c *Client) Analyze(ctx context.Context, logContent string) (string, error) {
	model := c.Model
	if model == "" {
		model = "mistral-7b-v0.1"
	}
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0.2,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(logContent)},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", domai.ErrQuotaExceeded
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Fallback wraps a Client with the heuristic analyzer: when the LLM
// server is unreachable the heuristic result is returned instead, so an
// upload still gets an analysis. Mirrors the mock mode of the original
// deployment.
type Fallback struct {
	Primary *Client
}

func (f *Fallback) Analyze(ctx context.Context, logContent string) (string, error) {
	if f.Primary != nil {
		res, err := f.Primary.Analyze(ctx, logContent)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, domai.ErrQuotaExceeded) {
			return "", err
		}
	}
	return prompt.AnalyzeLogContent(logContent), nil
}
