package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/MagicGarden_Go/internal/domain"
)

// APIError is a refusal from the authority: a non-2xx status with a detail,
// or a 2xx body with success=false.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", domain.ErrMsgActionRejected, e.Status, e.Detail)
}

// Unwrap lets callers match with errors.Is(err, domain.ErrActionRejected)
func (e *APIError) Unwrap() error {
	return domain.ErrActionRejected
}

// errorBody is the authority's error envelope. Detail is either a string or,
// for request validation failures, a list of {loc, msg, type} objects.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

// parseDetail extracts a human readable detail from an error body
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	if len(eb.Detail) > 0 {
		var s string
		if err := json.Unmarshal(eb.Detail, &s); err == nil {
			return s
		}

		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(eb.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}
			return strings.Join(msgs, "; ")
		}
	}

	return eb.Error
}

func newAPIError(status int, body []byte) *APIError {
	detail := parseDetail(body)
	if detail == "" {
		detail = DefaultRejectionDetail
	}
	return &APIError{Status: status, Detail: detail}
}
