package api

// LoginRequest is the credential payload for /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"device_id"`
}

// TokenResponse carries the tokens issued on a successful login.
type TokenResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // opaque refresh token
	ExpiresIn    int64  `json:"expires_in"`    // access token lifetime in seconds
}

// ErrorResponse is the error body returned outside the envelope by
// older server builds. Kept for compatibility when decoding failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
