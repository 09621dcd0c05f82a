package handlers

// ErrorResponse is the uniform error body for every endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Message string `json:"message"`
}
