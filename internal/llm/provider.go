// Package llm wraps the chat-completion client used for the optional
// free-form document analysis. Everything else in the pipeline is
// deterministic and does not touch this package.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal interface needed to call a chat model. It mirrors
// the CreateChatCompletion method of *openai.Client so that any
// OpenAI-compatible or local backend can be adapted, and tests can fake it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}

// MaxContentChars bounds how much extracted text is sent with a prompt.
// Longer documents are truncated, not rejected.
const MaxContentChars = 4000

// DefaultModel is used when the caller does not name one.
const DefaultModel = openai.GPT3Dot5Turbo

var ErrEmptyAnswer = errors.New("llm: model returned no content")

// Advisor sends extracted document content to a chat model alongside a
// caller-supplied prompt and returns the model's answer verbatim.
type Advisor struct {
	Client Client
	Model  string
}

// Analyze asks the model about the given content. sourceKind is a short
// human label ("pdf", "web") included in the prompt so the model knows
// what it is reading.
func (a *Advisor) Analyze(ctx context.Context, prompt, sourceKind, content string) (string, error) {
	if a.Client == nil {
		return "", errors.New("llm: advisor not configured")
	}
	model := a.Model
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if r := []rune(content); len(r) > MaxContentChars {
		content = string(r[:MaxContentChars])
	}
	user := fmt.Sprintf("%s\n\nSource content (%s):\n%s", prompt, sourceKind, content)

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
		N:           1,
	}
	resp, err := a.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("analysis call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyAnswer
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyAnswer
	}
	return out, nil
}
