package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
	"github.com/wenmin92/JsonPathNavigator/internal/core/ports/driven"
	"github.com/wenmin92/JsonPathNavigator/internal/core/ports/driving"
	"github.com/wenmin92/JsonPathNavigator/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// previewLimit caps the scalar value text shown in a result preview.
const previewLimit = 50

// SearchService resolves, validates and completes dotted paths against
// a corpus of parsed JSON documents. One instance serves one search
// session; discard it when the session ends.
type SearchService struct {
	corpus driven.Corpus

	suggestions suggestionCache
}

// NewSearchService creates a new search service reading from corpus.
func NewSearchService(corpus driven.Corpus) *SearchService {
	return &SearchService{
		corpus:      corpus,
		suggestions: suggestionCache{prefixes: make(map[string][]string)},
	}
}

// Resolve finds every document in which path resolves to a property.
// Each document contributes at most one result, in corpus order.
func (s *SearchService) Resolve(ctx context.Context, path string) ([]domain.SearchResult, error) {
	logger.Section("Path Resolution")
	logger.Debug("Path: %q", path)

	docs, err := s.documents(ctx)
	if err != nil {
		return nil, err
	}

	segments := strings.Split(path, ".")
	if !hasTopLevelName(docs, segments[0]) {
		logger.Debug("No document has top-level member %q", segments[0])
		return []domain.SearchResult{}, nil
	}

	results := make([]domain.SearchResult, 0)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prop, ok := resolveSegments(doc.Root, segments)
		if !ok {
			continue
		}

		results = append(results, domain.SearchResult{
			DocumentID: doc.ID,
			URI:        doc.URI,
			Path:       path,
			Preview:    previewFor(prop),
			Line:       doc.LineAt(prop.NameOffset),
		})
	}

	logger.Info("Resolved %q in %d of %d documents", path, len(results), len(docs))
	return results, nil
}

// documents snapshots the corpus, enforcing the non-nil corpus
// contract.
func (s *SearchService) documents(ctx context.Context) ([]*domain.Document, error) {
	if s.corpus == nil {
		return nil, fmt.Errorf("%w: no corpus configured", domain.ErrInvalidInput)
	}

	docs, err := s.corpus.Documents(ctx)
	if err != nil {
		logger.Warn("Corpus listing failed: %v", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// hasTopLevelName reports whether any document root carries name as a
// direct member. Documents without an object root are skipped.
func hasTopLevelName(docs []*domain.Document, name string) bool {
	for _, doc := range docs {
		if !doc.Root.IsObject() {
			continue
		}
		if _, ok := doc.Root.Property(name); ok {
			return true
		}
	}
	return false
}

// resolveSegments descends from root one segment at a time, matching
// direct children only. Every non-terminal segment must resolve to an
// object; arrays and scalars end the descent. Returns the property the
// terminal segment resolved to.
func resolveSegments(root *domain.Value, segments []string) (*domain.Property, bool) {
	if !root.IsObject() {
		return nil, false
	}

	current := root
	for i, seg := range segments {
		prop, ok := current.Property(seg)
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return prop, true
		}
		if !prop.Value.IsObject() {
			return nil, false
		}
		current = prop.Value
	}
	return nil, false
}

// previewFor renders a one-line "<name>: <value>" preview. Object
// values collapse to a placeholder; everything else shows its source
// text with whitespace folded and long text truncated.
func previewFor(prop *domain.Property) string {
	if prop.Value.IsObject() {
		return prop.Name + ": { ... }"
	}

	text := strings.Join(strings.Fields(prop.Value.Raw), " ")
	if runes := []rune(text); len(runes) > previewLimit {
		text = string(runes[:previewLimit]) + "..."
	}
	return prop.Name + ": " + text
}
