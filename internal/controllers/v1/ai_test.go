package v1_test

import (
	"net/http"
	"testing"

	"github.com/smartfinance/backend/internal/ai"
	v1 "github.com/smartfinance/backend/internal/controllers/v1"
	"github.com/smartfinance/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

// The suite never sets OPENAI_API_KEY, so the AI endpoints are disabled
// and must answer 503 before any request validation happens.
func (suite *TestSuiteStandard) TestAIDisabled() {
	tests := []struct {
		name string
		url  string
		body any
	}{
		{"chat", "/v1/ai/chat", v1.ChatRequest{Messages: []ai.Message{{Role: "user", Content: "How much did I spend?"}}}},
		{"chat without messages", "/v1/ai/chat", v1.ChatRequest{}},
		{"receipt scan", "/v1/ai/receipt-scan", v1.ReceiptScanRequest{Image: "data:image/jpeg;base64,AAAA"}},
		{"receipt scan without image", "/v1/ai/receipt-scan", v1.ReceiptScanRequest{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusServiceUnavailable)

			var response v1.ChatResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, ai.ErrUnavailable.Error(), *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAIOptions() {
	tests := []struct {
		url string
	}{
		{"/v1/ai/chat"},
		{"/v1/ai/receipt-scan"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := suite.Request(http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
		})
	}
}
