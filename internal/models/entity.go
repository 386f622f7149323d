package models

// SyncState tracks whether a locally cached entity matches the server.
type SyncState string

const (
	// SyncStateSynced means local state matches the last server round-trip.
	SyncStateSynced SyncState = "SYNCED"
	// SyncStateNotSynced means a local edit has not been confirmed by the
	// server yet, or the entity was flagged for resync after a dismiss.
	SyncStateNotSynced SyncState = "NOT_SYNCED"
)

// EntityType identifies which local table an operation or pull targets.
type EntityType string

const (
	EntityBook          EntityType = "book"
	EntityContributor   EntityType = "contributor"
	EntitySeries        EntityType = "series"
	EntityPlaybackState EntityType = "playback_state"
	EntityPreferences   EntityType = "preferences"
)

// Syncable is the base embedded in every locally cached entity.
// ServerVersion is the server's updated_at for the record and is used to
// detect staleness; LastModified is the local wall clock of the last local
// write.
type Syncable struct {
	ID            string    `json:"id"`
	SyncState     SyncState `json:"sync_state"`
	LastModified  int64     `json:"last_modified"`  // unix millis, local clock
	ServerVersion int64     `json:"server_version"` // unix millis, server clock
}

// Book is the locally cached mirror of a server book.
type Book struct {
	Syncable
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Description  string            `json:"description,omitempty"`
	Publisher    string            `json:"publisher,omitempty"`
	PublishYear  int               `json:"publish_year,omitempty"`
	Language     string            `json:"language,omitempty"`
	ASIN         string            `json:"asin,omitempty"`
	ISBN         string            `json:"isbn,omitempty"`
	Duration     float64           `json:"duration,omitempty"`
	Contributors []BookContributor `json:"contributors,omitempty"`
	Series       []BookSeriesRef   `json:"series,omitempty"`
}

// BookContributor credits a contributor on a book with a role.
type BookContributor struct {
	ContributorID string `json:"contributor_id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
}

// BookSeriesRef places a book inside a series.
type BookSeriesRef struct {
	SeriesID string `json:"series_id"`
	Name     string `json:"name"`
	Sequence string `json:"sequence,omitempty"`
}

// Contributor is the locally cached mirror of an author/narrator.
type Contributor struct {
	Syncable
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ASIN        string `json:"asin,omitempty"`
}

// Series is the locally cached mirror of a book series.
type Series struct {
	Syncable
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
