package dto

import "time"

// APIResponse is the envelope of every successful response
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo describes one page of a list
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status       string `json:"status" example:"ok"`
	SessionStore string `json:"sessionStore" example:"memory"`
	Uptime       string `json:"uptime" example:"1h2m3s"`
}
