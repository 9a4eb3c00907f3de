package v1

import (
	"errors"
	"net/http"

	"github.com/smartfinance/backend/internal/ai"
	"github.com/smartfinance/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// statusAI returns the appropriate status for an AI service error
func statusAI(err error) int {
	if errors.Is(err, ai.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}

	if errors.Is(err, ai.ErrUpstream) || errors.Is(err, ai.ErrReceiptUnreadable) {
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

// Voice command errors
var (
	errTranscriptEmpty = errors.New("the transcript must be set")
)

// AI errors
var (
	errMessagesEmpty = errors.New("at least one chat message must be sent")
	errImageEmpty    = errors.New("the image must be set")
)
