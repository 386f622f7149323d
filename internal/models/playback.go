package models

// PlaybackState is the per-book playback progress for the signed-in user.
// Position, IsFinished and FinishedAt are server-owned and overwritten on
// pull (unless a pending local operation guards them); PlaybackSpeed is
// locally owned and survives pulls.
type PlaybackState struct {
	Syncable
	BookID         string  `json:"book_id"`
	Position       float64 `json:"position"` // seconds
	Duration       float64 `json:"duration,omitempty"`
	IsFinished     bool    `json:"is_finished"`
	FinishedAt     int64   `json:"finished_at,omitempty"`
	LastPlayedAt   int64   `json:"last_played_at,omitempty"`
	CurrentFileIdx int     `json:"current_file_idx,omitempty"`
	PlaybackSpeed  float64 `json:"playback_speed,omitempty"` // locally owned
}

// ListeningEvent is one recorded span of listening time. Events are
// append-only: they are queued for upload and never edited.
type ListeningEvent struct {
	ID        string  `json:"id"`
	BookID    string  `json:"book_id"`
	StartedAt int64   `json:"started_at"` // unix millis
	Duration  float64 `json:"duration"`   // seconds listened
	Speed     float64 `json:"speed,omitempty"`
}

// BookPreferences holds per-book playback preferences.
type BookPreferences struct {
	Syncable
	BookID        string  `json:"book_id"`
	PlaybackSpeed float64 `json:"playback_speed,omitempty"`
	SkipIntro     bool    `json:"skip_intro,omitempty"`
}
