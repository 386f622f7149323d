package storage

import "context"

// SessionData is the persisted login session. Tokens are stored as
// issued; the server scopes them to this device ID.
type SessionData struct {
	UserID       string `json:"user_id"`
	DeviceID     string `json:"device_id"`
	ServerURL    string `json:"server_url"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
}

// SessionStorage persists the current login session on device.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, s *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
