package api

// Envelope is the JSON response envelope used by every ListenUp server
// endpoint. Data is present on success, Error/Message on failure.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
