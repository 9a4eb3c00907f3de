package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/smartfinance/backend/internal/types"
)

// ErrReceiptUnreadable means the model replied, but not with a usable
// extraction.
var ErrReceiptUnreadable = errors.New("could not extract transaction details from the receipt")

// ReceiptResult is the transaction extracted from a receipt image.
type ReceiptResult struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Type     string `json:"type"`
}

const receiptPrompt = `You are a receipt scanner. Extract transaction details from the receipt image and respond with ONLY a JSON object in this exact format:
{
  "title": "merchant or store name",
  "amount": "total amount as a number string without currency symbols",
  "category": "one of: Food, Rent, Bills, Transport, Entertainment, Other",
  "date": "date in YYYY-MM-DD format, or today's date if not visible",
  "type": "expense"
}
Do not include any other text in your response.`

// ExtractReceipt sends a base64-encoded receipt image to the vision model
// and parses the structured result. A data-URL prefix on the image is
// stripped before sending.
func (s *Service) ExtractReceipt(ctx context.Context, imageBase64 string) (ReceiptResult, error) {
	if !s.Enabled() {
		return ReceiptResult{}, ErrUnavailable
	}

	if i := strings.Index(imageBase64, "base64,"); i >= 0 {
		imageBase64 = imageBase64[i+len("base64,"):]
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: receiptModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: receiptPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:image/jpeg;base64,%s", imageBase64),
						},
					},
				},
			},
		},
		Temperature: 0.2,
		MaxTokens:   500,
	})
	if err != nil {
		return ReceiptResult{}, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return ReceiptResult{}, ErrReceiptUnreadable
	}

	return ParseReceiptResponse(resp.Choices[0].Message.Content)
}

// Models sometimes wrap the JSON in prose or a code fence.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseReceiptResponse extracts a ReceiptResult from the model's reply.
// Unknown categories fall back to Other, unknown types to expense.
func ParseReceiptResponse(content string) (ReceiptResult, error) {
	raw := jsonObjectPattern.FindString(content)
	if raw == "" {
		return ReceiptResult{}, ErrReceiptUnreadable
	}

	var result ReceiptResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return ReceiptResult{}, ErrReceiptUnreadable
	}

	if result.Title == "" || result.Amount == "" {
		return ReceiptResult{}, ErrReceiptUnreadable
	}

	if !types.Category(result.Category).Valid() {
		result.Category = string(types.CategoryOther)
	}

	if !types.TransactionType(result.Type).Valid() {
		result.Type = string(types.TypeExpense)
	}

	return result, nil
}
