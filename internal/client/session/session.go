// Package session holds the signed-in user context passed explicitly
// into the sync engine. No ambient globals: construct once, inject
// everywhere.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/listenupapp/listenup-client/internal/client/storage"
)

// ErrNotAuthenticated indicates that no valid session is available.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the device/user context for one signed-in client.
type Session struct {
	UserID       string
	DeviceID     string
	ServerURL    string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Valid reports whether the session holds a non-expired access token.
func (s *Session) Valid() bool {
	return s != nil && s.AccessToken != "" && time.Now().Before(s.ExpiresAt)
}

// NewDeviceID generates a stable random device identifier, created once
// at first login and persisted with the session.
func NewDeviceID() string {
	return uuid.NewString()
}

// TokenExpiry extracts the exp claim from a JWT access token without
// verifying the signature (the client has no server key; expiry is only
// used to decide when to prompt for re-login).
func TokenExpiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("access token has no expiry claim")
	}
	return exp.Time, nil
}

// Load reads the persisted session from storage.
// Returns ErrNotAuthenticated if no session or an expired one is stored.
func Load(ctx context.Context, store storage.SessionStorage) (*Session, error) {
	data, err := store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	s := &Session{
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		ServerURL:    data.ServerURL,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    time.Unix(data.ExpiresAt, 0),
	}
	if !s.Valid() {
		return nil, ErrNotAuthenticated
	}
	return s, nil
}

// Save persists the session to storage.
func Save(ctx context.Context, store storage.SessionStorage, s *Session) error {
	err := store.SaveSession(ctx, &storage.SessionData{
		UserID:       s.UserID,
		DeviceID:     s.DeviceID,
		ServerURL:    s.ServerURL,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
