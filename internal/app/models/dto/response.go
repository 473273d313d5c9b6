package dto

import "time"

// APIResponse is the success envelope of every endpoint
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful APIResponse
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// OKResponse is returned by commands that have no payload
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"up"`
}

// InfoResponse is returned by /info
type InfoResponse struct {
	Name      string   `json:"name" example:"Student Registration API"`
	Version   string   `json:"version" example:"1.0"`
	Endpoints []string `json:"endpoints"`
}
