package services

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
	"github.com/wenmin92/JsonPathNavigator/internal/logger"
)

// minPartialLen is the shortest partial worth scanning the corpus for.
const minPartialLen = 2

// suggestionCache memoizes, per corpus generation, the complete paths
// reachable below a prefix. Keys are lowercased prefixes; the empty
// key holds every path in the corpus. Entries are only added within a
// generation; a generation change discards the whole map.
type suggestionCache struct {
	generation uint64
	prefixes   map[string][]string
}

// Suggest returns completions for partial, sorted lexicographically.
// Partials without a dot match as a case-insensitive substring of any
// complete path; dotted partials match as a case-insensitive prefix of
// the paths below their parent prefix.
func (s *SearchService) Suggest(ctx context.Context, partial string) ([]string, error) {
	logger.Section("Path Suggestion")
	logger.Debug("Partial: %q", partial)

	docs, err := s.documents(ctx)
	if err != nil {
		return nil, err
	}
	s.refreshCache()

	if utf8.RuneCountInString(partial) < minPartialLen {
		logger.Debug("Partial shorter than %d characters, skipping scan", minPartialLen)
		return []string{}, nil
	}

	if !strings.Contains(partial, ".") {
		return s.keywordSuggestions(ctx, docs, partial)
	}
	return s.prefixSuggestions(ctx, docs, partial)
}

// Paths enumerates every complete dotted path in the corpus, sorted
// lexicographically.
func (s *SearchService) Paths(ctx context.Context) ([]string, error) {
	docs, err := s.documents(ctx)
	if err != nil {
		return nil, err
	}
	s.refreshCache()

	all, err := s.cachedPaths(ctx, docs, "")
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(all))
	copy(paths, all)
	sort.Strings(paths)
	return paths, nil
}

// InvalidateSuggestions discards all cached suggestion sets. The next
// call rebuilds the cache against the current corpus generation.
func (s *SearchService) InvalidateSuggestions() {
	s.suggestions = suggestionCache{}
	logger.Debug("Suggestion cache invalidated")
}

// refreshCache drops cached suggestions when the corpus generation has
// moved on. Only called after the nil-corpus check in documents.
func (s *SearchService) refreshCache() {
	gen := s.corpus.Generation()
	if s.suggestions.prefixes == nil || s.suggestions.generation != gen {
		logger.Debug("Suggestion cache reset for generation %d", gen)
		s.suggestions = suggestionCache{
			generation: gen,
			prefixes:   make(map[string][]string),
		}
	}
}

// keywordSuggestions matches partial as a case-insensitive substring
// anywhere in a complete path.
func (s *SearchService) keywordSuggestions(ctx context.Context, docs []*domain.Document, partial string) ([]string, error) {
	all, err := s.cachedPaths(ctx, docs, "")
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(partial)
	matches := make([]string, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p), needle) {
			matches = append(matches, p)
		}
	}
	sort.Strings(matches)

	logger.Debug("Keyword %q matched %d of %d paths", partial, len(matches), len(all))
	return matches, nil
}

// prefixSuggestions serves dotted partials from the per-prefix cache.
// The parent prefix is everything before the last dot; the tail after
// it may be empty, which keeps every path below the parent.
func (s *SearchService) prefixSuggestions(ctx context.Context, docs []*domain.Document, partial string) ([]string, error) {
	parent := partial[:strings.LastIndex(partial, ".")]

	candidates, err := s.cachedPaths(ctx, docs, parent)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(partial)
	matches := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if strings.HasPrefix(strings.ToLower(p), needle) {
			matches = append(matches, p)
		}
	}
	sort.Strings(matches)

	logger.Debug("Prefix %q matched %d of %d cached paths", parent, len(matches), len(candidates))
	return matches, nil
}

// cachedPaths returns the complete paths below parent, computing and
// caching them on first use. Unresolvable parents cache an empty set
// rather than rescanning on every keystroke. Keys are lowercased
// because descent is case-insensitive, so spellings that fold together
// yield the same paths.
func (s *SearchService) cachedPaths(ctx context.Context, docs []*domain.Document, parent string) ([]string, error) {
	key := strings.ToLower(parent)
	if paths, ok := s.suggestions.prefixes[key]; ok {
		logger.Debug("Suggestion cache hit for %q (%d paths)", key, len(paths))
		return paths, nil
	}

	paths, err := collectPaths(ctx, docs, parent)
	if err != nil {
		return nil, err
	}
	s.suggestions.prefixes[key] = paths

	logger.Debug("Suggestion cache store for %q (%d paths)", key, len(paths))
	return paths, nil
}

// pathCursor tracks one descent branch: the object reached and the
// document-spelled path that led to it.
type pathCursor struct {
	obj  *domain.Value
	base string
}

// collectPaths descends parent case-insensitively in every document
// and records all complete paths below the objects reached, at every
// depth. Because matching folds case, a segment may fan out to several
// sibling branches. An empty parent enumerates the whole corpus. Paths
// keep their document spelling and are deduplicated in first-seen order.
func collectPaths(ctx context.Context, docs []*domain.Document, parent string) ([]string, error) {
	var segments []string
	if parent != "" {
		segments = strings.Split(parent, ".")
	}

	seen := make(map[string]struct{})
	paths := make([]string, 0)

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !doc.Root.IsObject() {
			continue
		}

		cursors := []pathCursor{{obj: doc.Root}}
		for _, seg := range segments {
			var next []pathCursor
			for _, cur := range cursors {
				for i := range cur.obj.Properties {
					prop := &cur.obj.Properties[i]
					if !strings.EqualFold(prop.Name, seg) || !prop.Value.IsObject() {
						continue
					}
					next = append(next, pathCursor{obj: prop.Value, base: joinPath(cur.base, prop.Name)})
				}
			}
			cursors = next
			if len(cursors) == 0 {
				break
			}
		}

		for _, cur := range cursors {
			appendDescendants(cur.obj, cur.base, seen, &paths)
		}
	}
	return paths, nil
}

// appendDescendants records the dotted path of every property below
// obj, descending transitively into object values.
func appendDescendants(obj *domain.Value, base string, seen map[string]struct{}, paths *[]string) {
	for i := range obj.Properties {
		prop := &obj.Properties[i]
		full := joinPath(base, prop.Name)
		if _, dup := seen[full]; !dup {
			seen[full] = struct{}{}
			*paths = append(*paths, full)
		}
		if prop.Value.IsObject() {
			appendDescendants(prop.Value, full, seen, paths)
		}
	}
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
