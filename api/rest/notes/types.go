package notes

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform JSON error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// ValidationDetail describes a single invalid request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
