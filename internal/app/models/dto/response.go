package dto

import (
	"time"

	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
)

// APIResponse is the standard envelope for rendered views
type APIResponse struct {
	Data      interface{}    `json:"data,omitempty"`
	Flash     *flash.Message `json:"flash,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewViewResponse builds a view response carrying the page data and any
// pending flash message
func NewViewResponse(data interface{}, msg *flash.Message) APIResponse {
	return APIResponse{
		Data:      data,
		Flash:     msg,
		Timestamp: time.Now(),
	}
}
