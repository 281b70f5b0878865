package types

import (
	"github.com/killallgit/podscribe-api/internal/models"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}

// AuthResponse for register/login, carrying the signed token
type AuthResponse struct {
	BaseResponse
	Token string `json:"token"`
	PID   string `json:"pid"`
	Name  string `json:"name"`
	Role  int    `json:"role"`
}

// CurrentUserResponse for the authenticated-user endpoint
type CurrentUserResponse struct {
	PID   string `json:"pid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// SearchHit is one ranked match with its hydrated rows
type SearchHit struct {
	PartID    uint              `json:"part_id"`
	Score     float64           `json:"score"`
	Part      *models.Part      `json:"part,omitempty"`
	Episode   *models.Episode   `json:"episode,omitempty"`
	Approvals []models.Approval `json:"approvals"`
}

// SearchResponse for the episode search endpoint
type SearchResponse struct {
	BaseResponse
	Query string      `json:"query"`
	Count int         `json:"count"`
	Hits  []SearchHit `json:"hits"`
}
