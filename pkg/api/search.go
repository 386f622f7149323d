package api

// SearchResult is one fuzzy-search hit. Score is the server's
// popularity-weighted rank; higher is better.
type SearchResult struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"` // book, contributor, series
	Name     string  `json:"name"`
	Subtitle string  `json:"subtitle,omitempty"`
	Score    float64 `json:"score"`
}

// SearchResponse wraps the hits for one search call.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}
