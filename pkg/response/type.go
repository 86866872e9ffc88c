package response

// Resp is the JSON envelope of every HR endpoint.
type Resp struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultErrorMessage hides internal failures from clients.
const DefaultErrorMessage = "internal server error"
