// Package ai integrates the OpenAI API for the chat assistant and for
// receipt-image extraction.
//
// Prompt assembly and response parsing are separated from the API calls so
// they can be tested without network access.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrUnavailable is returned when no API key is configured.
	ErrUnavailable = errors.New("AI features are unavailable, configure the OPENAI_API_KEY environment variable")

	// ErrUpstream is returned when the OpenAI API call fails.
	ErrUpstream = errors.New("the AI service did not return a usable response")
)

const (
	chatModel    = openai.GPT4oMini
	receiptModel = openai.GPT4o
)

// Service calls the OpenAI API. The zero value is a disabled service.
type Service struct {
	client *openai.Client
}

// New returns a Service for the API key. An empty key returns a disabled
// service whose calls fail with ErrUnavailable.
func New(apiKey string) *Service {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return &Service{}
	}

	return &Service{client: openai.NewClient(apiKey)}
}

// Enabled reports whether an API key is configured.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Message is a single chat message in the conversation with the assistant.
type Message struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"How much did I spend on food this month?"`
}

// Chat sends the conversation to the assistant, grounded in the user's
// financial data.
func (s *Service) Chat(ctx context.Context, data ContextData, messages []Message) (string, error) {
	if !s.Enabled() {
		return "", ErrUnavailable
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: data.SystemPrompt(),
	})
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       chatModel,
		Messages:    chatMessages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrUpstream
	}

	return resp.Choices[0].Message.Content, nil
}
