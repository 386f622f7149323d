package sync

import (
	"github.com/listenupapp/listenup-client/pkg/api"
)

// Operation payloads as stored in the queue. Stored format is plain
// JSON, decoupled from the wire format the handlers build on execute.

// BookUpdatePayload mirrors the editable book fields. Nil means "field
// untouched by this edit"; coalescing overlays non-nil fields of the
// newer edit onto the older one.
type BookUpdatePayload struct {
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
	PublishYear *int    `json:"publish_year,omitempty"`
	Language    *string `json:"language,omitempty"`
	ASIN        *string `json:"asin,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
}

func (p *BookUpdatePayload) overlay(newer *BookUpdatePayload) {
	if newer.Title != nil {
		p.Title = newer.Title
	}
	if newer.Subtitle != nil {
		p.Subtitle = newer.Subtitle
	}
	if newer.Description != nil {
		p.Description = newer.Description
	}
	if newer.Publisher != nil {
		p.Publisher = newer.Publisher
	}
	if newer.PublishYear != nil {
		p.PublishYear = newer.PublishYear
	}
	if newer.Language != nil {
		p.Language = newer.Language
	}
	if newer.ASIN != nil {
		p.ASIN = newer.ASIN
	}
	if newer.ISBN != nil {
		p.ISBN = newer.ISBN
	}
}

func (p *BookUpdatePayload) toRequest() api.BookUpdateRequest {
	return api.BookUpdateRequest{
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		Publisher:   p.Publisher,
		PublishYear: p.PublishYear,
		Language:    p.Language,
		ASIN:        p.ASIN,
		ISBN:        p.ISBN,
	}
}

// SetContributorsPayload is the full replacement contributor list.
type SetContributorsPayload struct {
	Contributors []api.ContributorInput `json:"contributors"`
}

// SetSeriesPayload is the full replacement series membership.
type SetSeriesPayload struct {
	Series []api.SeriesInput `json:"series"`
}

// MergeContributorPayload merges source into target.
type MergeContributorPayload struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// ListeningEventPayload is one recorded listening span.
type ListeningEventPayload struct {
	EventID   string  `json:"event_id"`
	BookID    string  `json:"book_id"`
	StartedAt int64   `json:"started_at"`
	Duration  float64 `json:"duration"`
	Speed     float64 `json:"speed,omitempty"`
}

// PlaybackPositionPayload is the latest playback position for a book.
type PlaybackPositionPayload struct {
	BookID       string  `json:"book_id"`
	Position     float64 `json:"position"`
	IsFinished   bool    `json:"is_finished"`
	LastPlayedAt int64   `json:"last_played_at,omitempty"`
}

// PreferencesPayload carries per-book playback preferences.
type PreferencesPayload struct {
	BookID        string   `json:"book_id"`
	PlaybackSpeed *float64 `json:"playback_speed,omitempty"`
	SkipIntro     *bool    `json:"skip_intro,omitempty"`
}
