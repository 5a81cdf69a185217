package domain

// SearchResult represents a single location where a dotted path resolved.
// Results are produced fresh per search and never cached across searches.
type SearchResult struct {
	// DocumentID is the ID of the document that matched.
	DocumentID string `json:"document_id"`

	// URI is the matched document's original location.
	URI string `json:"uri"`

	// Path is the fully-resolved dotted path.
	Path string `json:"path"`

	// Preview is a one-line "name: value" rendering of the terminal
	// property, truncated for display.
	Preview string `json:"preview"`

	// Line is the 1-based line number of the terminal property's name token.
	Line int `json:"line"`
}
