package api

// BooksDelta is the response of GET /api/v1/sync/books?updated_after=...
// Deleted carries tombstone IDs so clients can drop local copies.
type BooksDelta struct {
	Books     []Book   `json:"books"`
	Deleted   []string `json:"deleted,omitempty"`
	Timestamp int64    `json:"timestamp"` // server clock at snapshot time
}

// ContributorsDelta is the contributor delta response.
type ContributorsDelta struct {
	Contributors []Contributor `json:"contributors"`
	Deleted      []string      `json:"deleted,omitempty"`
	Timestamp    int64         `json:"timestamp"`
}

// SeriesDelta is the series delta response.
type SeriesDelta struct {
	Series    []Series `json:"series"`
	Deleted   []string `json:"deleted,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// ProgressDelta is the playback-state delta response. The server does not
// tombstone progress; a reset shows up as a zeroed record.
type ProgressDelta struct {
	States    []PlaybackState `json:"states"`
	Timestamp int64           `json:"timestamp"`
}
