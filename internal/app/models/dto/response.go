package dto

import "time"

// APIResponse is the standard envelope for successful API responses.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope with the given payload.
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Data:      data,
		Message:   message,
		Timestamp: time.Now(),
	}
}
