package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
)

func TestSearchService_Suggest_PrefixMode(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"a": {"b": {"c": 1}}}`)
	svc := newTestService(t, doc)

	got, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b", "a.b.c"}, got)
}

func TestSearchService_Suggest_PrefixNarrowing(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"a": {"bat": 1, "bar": {"deep": 2}, "cat": 3}}`)
	svc := newTestService(t, doc)

	broad, err := svc.Suggest(context.Background(), "a.b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bar", "a.bar.deep", "a.bat"}, broad)

	narrow, err := svc.Suggest(context.Background(), "a.bar")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bar", "a.bar.deep"}, narrow)

	// Narrowing only filters; it never adds.
	for _, p := range narrow {
		assert.Contains(t, broad, p)
	}
}

func TestSearchService_Suggest_ShortPartial(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"ab": {"cd": 1}}`)
	svc := newTestService(t, doc)

	for _, partial := range []string{"", "a", "."} {
		got, err := svc.Suggest(context.Background(), partial)
		require.NoError(t, err)
		assert.Empty(t, got, "partial %q", partial)
	}

	// Two characters is enough.
	got, err := svc.Suggest(context.Background(), "ab")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ab.cd"}, got)
}

func TestSearchService_Suggest_KeywordMode(t *testing.T) {
	doc1 := parseDoc(t, "doc-1", "one.json", `{"alpha": {"beta": 1}}`)
	doc2 := parseDoc(t, "doc-2", "two.json", `{"other": {"albeta": 2}}`)
	svc := newTestService(t, doc1, doc2)

	// Substring match anywhere in the path, not just the last segment.
	got, err := svc.Suggest(context.Background(), "be")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.beta", "other.albeta"}, got)

	got, err = svc.Suggest(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "alpha.beta"}, got)

	got, err = svc.Suggest(context.Background(), "zz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchService_Suggest_CaseInsensitive(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"Config": {"Server": {"Port": 8080}}}`)
	svc := newTestService(t, doc)

	got, err := svc.Suggest(context.Background(), "config.s")
	require.NoError(t, err)
	assert.Equal(t, []string{"Config.Server", "Config.Server.Port"}, got)

	got, err = svc.Suggest(context.Background(), "SERVER")
	require.NoError(t, err)
	assert.Equal(t, []string{"Config.Server", "Config.Server.Port"}, got)
}

func TestSearchService_Suggest_CaseFoldedSiblings(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"app": {"Name": 1}, "App": {"version": 2}}`)
	svc := newTestService(t, doc)

	// Both spellings of the parent segment contribute their children.
	got, err := svc.Suggest(context.Background(), "app.")
	require.NoError(t, err)
	assert.Equal(t, []string{"App.version", "app.Name"}, got)
}

func TestSearchService_Suggest_DedupesAcrossDocuments(t *testing.T) {
	doc1 := parseDoc(t, "doc-1", "one.json", `{"a": {"b": 1}}`)
	doc2 := parseDoc(t, "doc-2", "two.json", `{"a": {"b": 2, "c": 3}}`)
	svc := newTestService(t, doc1, doc2)

	got, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b", "a.c"}, got)
}

func TestSearchService_Suggest_UnresolvableParent(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"a": {"b": 1}}`)
	corpus := &mockCorpus{docs: []*domain.Document{doc}, generation: 1}
	svc := NewSearchService(corpus)

	got, err := svc.Suggest(context.Background(), "zz.x")
	require.NoError(t, err)
	assert.Empty(t, got)

	// The empty set is cached, not re-attempted per keystroke.
	_, ok := svc.suggestions.prefixes["zz"]
	assert.True(t, ok)
}

func TestSearchService_Suggest_NonObjectParentSegment(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"a": {"b": [1, 2]}}`)
	svc := newTestService(t, doc)

	// b is an array, so nothing lies below a.b.
	got, err := svc.Suggest(context.Background(), "a.b.")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchService_Suggest_CacheIsAdditiveWithinGeneration(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"a": {"b": 1}}`)
	corpus := &mockCorpus{docs: []*domain.Document{doc}, generation: 1}
	svc := NewSearchService(corpus)

	first, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b"}, first)

	// Swapping documents without bumping the generation leaves the
	// cached prefix untouched.
	corpus.docs = []*domain.Document{parseDoc(t, "doc-2", "two.json", `{"a": {"z": 9}}`)}

	stale, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)
	assert.Equal(t, first, stale)
}

func TestSearchService_Suggest_GenerationChangeResetsCache(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"a": {"b": 1}}`)
	corpus := &mockCorpus{docs: []*domain.Document{doc}, generation: 1}
	svc := NewSearchService(corpus)

	first, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b"}, first)

	corpus.docs = []*domain.Document{parseDoc(t, "doc-2", "two.json", `{"a": {"z": 9}}`)}
	corpus.generation = 2

	fresh, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.z"}, fresh)
}

func TestSearchService_InvalidateSuggestions(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"a": {"b": 1}}`)
	corpus := &mockCorpus{docs: []*domain.Document{doc}, generation: 1}
	svc := NewSearchService(corpus)

	_, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)

	corpus.docs = []*domain.Document{parseDoc(t, "doc-2", "two.json", `{"a": {"z": 9}}`)}
	svc.InvalidateSuggestions()

	fresh, err := svc.Suggest(context.Background(), "a.")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.z"}, fresh)
}

func TestSearchService_Suggest_NilCorpus(t *testing.T) {
	svc := NewSearchService(nil)

	_, err := svc.Suggest(context.Background(), "a.")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchService_Paths(t *testing.T) {
	doc1 := parseDoc(t, "doc-1", "one.json", `{"b": {"x": 1}}`)
	doc2 := parseDoc(t, "doc-2", "two.json", `{"a": 2, "b": {"x": 3}}`)
	svc := newTestService(t, doc1, doc2)

	got, err := svc.Paths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "b.x"}, got)
}

func TestSearchService_Paths_SharesCacheWithKeywordMode(t *testing.T) {
	doc := parseDoc(t, "doc-1", "one.json", `{"alpha": {"beta": 1}}`)
	corpus := &mockCorpus{docs: []*domain.Document{doc}, generation: 1}
	svc := NewSearchService(corpus)

	_, err := svc.Paths(context.Background())
	require.NoError(t, err)

	// Document changes are invisible until the generation moves, since
	// keyword mode reads the same cached enumeration.
	corpus.docs = nil
	got, err := svc.Suggest(context.Background(), "beta")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.beta"}, got)
}
