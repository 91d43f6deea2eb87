package net

import (
	"net/http"

	perr "vibecheck/internal/platform/errors"
)

// Wire is the JSON envelope every transport writes
type Wire struct {
	StatusCode int       `json:"status_code"`
	Status     string    `json:"status"`
	Code       perr.Code `json:"code,omitempty"`
	Error      string    `json:"error,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	Data       any       `json:"data,omitempty"`
}

// Reply builds the success envelope for status, echoing it back as the
// pair JSON writers take
func Reply(status int, reqID string, data any) (int, Wire) {
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// Error maps err onto its wire code and message. A nil err degrades to OK.
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return Reply(http.StatusOK, reqID, nil)
	}
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       wire.Code,
		Error:      wire.Message,
		RequestID:  reqID,
	}
}
