package driving

import (
	"context"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
)

// SearchService resolves, validates and completes dotted JSON paths
// against a corpus of parsed documents.
type SearchService interface {
	// Resolve finds every document in which the dotted path resolves
	// to a property, one result per document, in corpus order.
	// Unresolvable or malformed paths yield an empty slice, not an
	// error.
	Resolve(ctx context.Context, path string) ([]domain.SearchResult, error)

	// IsFullPath reports whether candidate is a complete root-anchored
	// path in at least one document.
	IsFullPath(ctx context.Context, candidate string) (bool, error)

	// FindRootAnchoredPath returns candidate unchanged when IsFullPath
	// holds for it, and the empty string otherwise.
	FindRootAnchoredPath(ctx context.Context, candidate string) (string, error)

	// Suggest returns completions for a partial path, sorted
	// lexicographically. Partials shorter than two characters yield an
	// empty slice. Matching is case-insensitive.
	Suggest(ctx context.Context, partial string) ([]string, error)

	// Paths enumerates every complete dotted path in the corpus,
	// sorted lexicographically.
	Paths(ctx context.Context) ([]string, error)

	// InvalidateSuggestions discards the suggestion cache. The cache
	// also resets itself when the corpus generation changes; this is
	// for callers that want to force a rescan without touching the
	// corpus.
	InvalidateSuggestions()
}
