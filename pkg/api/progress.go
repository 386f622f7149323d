package api

// PlaybackState is the wire representation of per-user playback progress
// for one book.
type PlaybackState struct {
	BookID          string  `json:"book_id"`
	Position        float64 `json:"position"` // seconds into the book
	Duration        float64 `json:"duration,omitempty"`
	IsFinished      bool    `json:"is_finished"`
	FinishedAt      int64   `json:"finished_at,omitempty"` // unix millis
	LastPlayedAt    int64   `json:"last_played_at,omitempty"`
	CurrentFileIdx  int     `json:"current_file_idx,omitempty"`
	UpdatedAt       int64   `json:"updated_at"`
}

// UpdateProgressRequest pushes a local playback position to the server.
type UpdateProgressRequest struct {
	BookID       string  `json:"book_id"`
	Position     float64 `json:"position"`
	IsFinished   bool    `json:"is_finished"`
	LastPlayedAt int64   `json:"last_played_at,omitempty"`
}

// ListeningEvent is one span of listening time, recorded locally during
// playback and uploaded in batches.
type ListeningEvent struct {
	ID        string  `json:"id"`
	BookID    string  `json:"book_id"`
	StartedAt int64   `json:"started_at"` // unix millis
	Duration  float64 `json:"duration"`   // seconds actually listened
	Speed     float64 `json:"speed,omitempty"`
}

// BatchEventsRequest uploads many listening events in one request.
type BatchEventsRequest struct {
	Events []ListeningEvent `json:"events"`
}

// BatchEventsResponse reports per-event acceptance; rejected IDs carry a
// reason so the client can drop (not retry) malformed events.
type BatchEventsResponse struct {
	Accepted int               `json:"accepted"`
	Rejected map[string]string `json:"rejected,omitempty"` // event ID -> reason
}

// BookPreferences carries per-user, per-book playback preferences.
// PlaybackSpeed is locally owned and never overwritten by pulls.
type BookPreferences struct {
	BookID        string  `json:"book_id"`
	PlaybackSpeed float64 `json:"playback_speed,omitempty"`
	SkipIntro     bool    `json:"skip_intro,omitempty"`
	UpdatedAt     int64   `json:"updated_at"`
}
