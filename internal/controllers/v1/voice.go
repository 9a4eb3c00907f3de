package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartfinance/backend/internal/httputil"
	"github.com/smartfinance/backend/internal/types"
	"github.com/smartfinance/backend/internal/voice"
)

func RegisterVoiceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/parse", OptionsVoiceParse)
		r.POST("/parse", ParseVoiceCommand)
	}
}

type VoiceParseRequest struct {
	Transcript string `json:"transcript" example:"Add ₹500 expense for groceries"` // The spoken command
}

type ParsedVoiceTransaction struct {
	Amount   string                `json:"amount" example:"500"`       // The amount as spoken, without separators
	Type     types.TransactionType `json:"type" example:"expense"`     // Whether money came in or went out
	Category types.Category        `json:"category" example:"Food"`    // The detected category
	Title    string                `json:"title" example:"Groceries"`  // Derived title for the transaction
	Date     string                `json:"date" example:"2026-08-14"`  // The day the transaction happened
}

type VoiceParseResponse struct {
	Error *string                 `json:"error" example:"could not find an amount in the transcript"` // The error, if any occurred
	Data  *ParsedVoiceTransaction `json:"data"`                                                       // The parsed draft transaction
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Voice
// @Success		204
// @Router			/v1/voice/parse [options]
func OptionsVoiceParse(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Parse voice command
// @Description	Parses a spoken transaction command into a draft transaction. The draft is not saved.
// @Tags			Voice
// @Accept			json
// @Produce		json
// @Success		200		{object}	VoiceParseResponse
// @Failure		400		{object}	VoiceParseResponse
// @Param			command	body		VoiceParseRequest	true	"Voice command"
// @Router			/v1/voice/parse [post]
func ParseVoiceCommand(c *gin.Context) {
	var request VoiceParseRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VoiceParseResponse{
			Error: &e,
		})
		return
	}

	if strings.TrimSpace(request.Transcript) == "" {
		e := errTranscriptEmpty.Error()
		c.JSON(http.StatusBadRequest, VoiceParseResponse{
			Error: &e,
		})
		return
	}

	parsed, err := voice.Parse(request.Transcript, time.Now())
	if err != nil {
		e := err.Error()
		s := http.StatusBadRequest
		if !errors.Is(err, voice.ErrNoAmount) {
			s = status(err)
		}
		c.JSON(s, VoiceParseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, VoiceParseResponse{
		Data: &ParsedVoiceTransaction{
			Amount:   parsed.Amount,
			Type:     parsed.Type,
			Category: parsed.Category,
			Title:    parsed.Title,
			Date:     parsed.Date.Format("2006-01-02"),
		},
	})
}
