package driven

import (
	"context"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
)

// Corpus enumerates the parsed JSON documents currently in scope.
// Implementations own document loading and lifecycle; core services
// only read the trees they are handed and never mutate them.
type Corpus interface {
	// Documents returns all documents in the corpus. The order is
	// stable within one call and is the order search results are
	// reported in.
	Documents(ctx context.Context) ([]*domain.Document, error)

	// Generation identifies the current corpus contents. It changes
	// whenever documents are added, removed or replaced, so callers
	// can detect that state derived from an earlier snapshot is
	// stale.
	Generation() uint64
}
