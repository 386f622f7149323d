package api

// Book is the wire representation of an audiobook.
type Book struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Subtitle     string             `json:"subtitle,omitempty"`
	Description  string             `json:"description,omitempty"`
	Publisher    string             `json:"publisher,omitempty"`
	PublishYear  int                `json:"publish_year,omitempty"`
	Language     string             `json:"language,omitempty"`
	ASIN         string             `json:"asin,omitempty"`
	ISBN         string             `json:"isbn,omitempty"`
	Duration     float64            `json:"duration,omitempty"` // seconds
	Contributors []BookContributor  `json:"contributors,omitempty"`
	Series       []BookSeriesEntry  `json:"series,omitempty"`
	UpdatedAt    int64              `json:"updated_at"` // unix millis, server clock
}

// BookContributor links a contributor to a book with a role.
type BookContributor struct {
	ContributorID string `json:"contributor_id"`
	Name          string `json:"name"`
	Role          string `json:"role"` // author, narrator, translator, ...
}

// BookSeriesEntry links a book to a series with a sequence position.
type BookSeriesEntry struct {
	SeriesID string `json:"series_id"`
	Name     string `json:"name"`
	Sequence string `json:"sequence,omitempty"` // "1", "2.5", ...
}

// Contributor is the wire representation of an author/narrator.
type Contributor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ASIN        string `json:"asin,omitempty"`
	UpdatedAt   int64  `json:"updated_at"`
}

// Series is the wire representation of a book series.
type Series struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UpdatedAt   int64  `json:"updated_at"`
}

// BookUpdateRequest carries editable book metadata fields. Nil pointer
// fields are left unchanged server-side.
type BookUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
	PublishYear *int    `json:"publish_year,omitempty"`
	Language    *string `json:"language,omitempty"`
	ASIN        *string `json:"asin,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
}

// ContributorInput names a contributor for SetBookContributors. Either
// ContributorID references an existing contributor or Name requests a
// get-or-create by name.
type ContributorInput struct {
	ContributorID string `json:"contributor_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Role          string `json:"role"`
}

// SeriesInput names a series membership for SetBookSeries.
type SeriesInput struct {
	SeriesID string `json:"series_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Sequence string `json:"sequence,omitempty"`
}

// SetContributorsRequest replaces the full contributor list of a book.
type SetContributorsRequest struct {
	Contributors []ContributorInput `json:"contributors"`
}

// SetSeriesRequest replaces the full series membership of a book.
type SetSeriesRequest struct {
	Series []SeriesInput `json:"series"`
}

// MergeContributorsRequest merges the source contributor into the target,
// repointing book credits and recording the source name as an alias.
type MergeContributorsRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}
