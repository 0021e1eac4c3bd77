// Package api defines request/response DTOs shared across HTTP handlers.
package api

// ErrorResponse is the common error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the common success payload for operations
// that return no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries an issued JWT access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TokenRequest is the payload for the API-key to token exchange.
type TokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}
