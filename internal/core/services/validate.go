package services

import (
	"context"
	"strings"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
	"github.com/wenmin92/JsonPathNavigator/internal/logger"
)

// IsFullPath reports whether candidate is a complete root-anchored
// path in at least one document: every segment must resolve from the
// document root, and the member names matched along the way must
// rejoin to candidate exactly.
func (s *SearchService) IsFullPath(ctx context.Context, candidate string) (bool, error) {
	logger.Debug("Validate path: %q", candidate)

	docs, err := s.documents(ctx)
	if err != nil {
		return false, err
	}

	segments := strings.Split(candidate, ".")
	if !hasTopLevelName(docs, segments[0]) {
		return false, nil
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		matched, ok := matchedSegments(doc.Root, segments)
		if !ok {
			continue
		}
		if strings.Join(matched, ".") == candidate {
			logger.Debug("Path %q anchored in document %s", candidate, doc.ID)
			return true, nil
		}
	}
	return false, nil
}

// FindRootAnchoredPath returns candidate when it validates as a full
// root-anchored path, and the empty string otherwise.
func (s *SearchService) FindRootAnchoredPath(ctx context.Context, candidate string) (string, error) {
	ok, err := s.IsFullPath(ctx, candidate)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return candidate, nil
}

// matchedSegments descends segments from root under the same rules as
// resolveSegments and returns the member names matched along the way.
// The names come from the document, so rejoining them reconstructs the
// path exactly as the document spells it.
func matchedSegments(root *domain.Value, segments []string) ([]string, bool) {
	if !root.IsObject() {
		return nil, false
	}

	matched := make([]string, 0, len(segments))
	current := root
	for i, seg := range segments {
		prop, ok := current.Property(seg)
		if !ok {
			return nil, false
		}
		matched = append(matched, prop.Name)
		if i == len(segments)-1 {
			return matched, true
		}
		if !prop.Value.IsObject() {
			return nil, false
		}
		current = prop.Value
	}
	return nil, false
}
