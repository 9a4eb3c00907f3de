package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartfinance/backend/internal/ai"
	"github.com/smartfinance/backend/internal/httputil"
)

// AI is the assistant service the handlers call. Set by the router on
// startup, a disabled service answers with 503.
var AI *ai.Service

func RegisterAIRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/chat", OptionsAIChat)
		r.POST("/chat", ChatWithAssistant)
	}
	{
		r.OPTIONS("/receipt-scan", OptionsReceiptScan)
		r.POST("/receipt-scan", ScanReceipt)
	}
}

type ChatRequest struct {
	Messages []ai.Message `json:"messages"` // The conversation so far, oldest first
}

type ChatResponse struct {
	Error *string `json:"error" example:"AI features are unavailable, configure the OPENAI_API_KEY environment variable"` // The error, if any occurred
	Data  *string `json:"data"`                                                                                          // The assistant's reply
}

type ReceiptScanRequest struct {
	Image string `json:"image"` // Base64-encoded receipt image, with or without a data-URL prefix
}

type ReceiptScanResponse struct {
	Error *string           `json:"error" example:"could not extract transaction details from the receipt"` // The error, if any occurred
	Data  *ai.ReceiptResult `json:"data"`                                                                   // The extracted transaction
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AI
// @Success		204
// @Router			/v1/ai/chat [options]
func OptionsAIChat(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AI
// @Success		204
// @Router			/v1/ai/receipt-scan [options]
func OptionsReceiptScan(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Chat with the assistant
// @Description	Sends the conversation to the finance assistant, grounded in the user's data
// @Tags			AI
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ChatResponse
// @Failure		502		{object}	ChatResponse
// @Failure		503		{object}	ChatResponse
// @Param			chat	body		ChatRequest	true	"Conversation"
// @Router			/v1/ai/chat [post]
func ChatWithAssistant(c *gin.Context) {
	if !AI.Enabled() {
		e := ai.ErrUnavailable.Error()
		c.JSON(http.StatusServiceUnavailable, ChatResponse{
			Error: &e,
		})
		return
	}

	var request ChatRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChatResponse{
			Error: &e,
		})
		return
	}

	if len(request.Messages) == 0 {
		e := errMessagesEmpty.Error()
		c.JSON(http.StatusBadRequest, ChatResponse{
			Error: &e,
		})
		return
	}

	transactions, budgets, goals, bills, err := financialData(currentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChatResponse{
			Error: &e,
		})
		return
	}

	reply, err := AI.Chat(c.Request.Context(), ai.ContextData{
		Transactions: transactions,
		Budgets:      budgets,
		Goals:        goals,
		Bills:        bills,
		Now:          time.Now(),
	}, request.Messages)
	if err != nil {
		e := err.Error()
		c.JSON(statusAI(err), ChatResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Data: &reply})
}

// @Summary		Scan a receipt
// @Description	Extracts a draft transaction from a base64-encoded receipt image. The draft is not saved.
// @Tags			AI
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReceiptScanResponse
// @Failure		400		{object}	ReceiptScanResponse
// @Failure		502		{object}	ReceiptScanResponse
// @Failure		503		{object}	ReceiptScanResponse
// @Param			receipt	body		ReceiptScanRequest	true	"Receipt image"
// @Router			/v1/ai/receipt-scan [post]
func ScanReceipt(c *gin.Context) {
	if !AI.Enabled() {
		e := ai.ErrUnavailable.Error()
		c.JSON(http.StatusServiceUnavailable, ReceiptScanResponse{
			Error: &e,
		})
		return
	}

	var request ReceiptScanRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceiptScanResponse{
			Error: &e,
		})
		return
	}

	if strings.TrimSpace(request.Image) == "" {
		e := errImageEmpty.Error()
		c.JSON(http.StatusBadRequest, ReceiptScanResponse{
			Error: &e,
		})
		return
	}

	result, err := AI.ExtractReceipt(c.Request.Context(), request.Image)
	if err != nil {
		e := err.Error()
		c.JSON(statusAI(err), ReceiptScanResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ReceiptScanResponse{Data: &result})
}
