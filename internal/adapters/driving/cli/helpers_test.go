package cli

import (
	"context"
	"errors"

	"github.com/wenmin92/JsonPathNavigator/internal/adapters/driven/corpus/memory"
	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
	"github.com/wenmin92/JsonPathNavigator/internal/core/services"
	"github.com/wenmin92/JsonPathNavigator/internal/jsondom"
)

const docOne = `{
  "a": {"b": {"c": 1}},
  "top": "x"
}`

const docTwo = `{"a": {"b": 2}}`

// setupTestServices points the commands at a small in-memory corpus.
// The returned cleanup restores the previous wiring.
func setupTestServices() func() {
	corpus := memory.NewCorpus()
	for _, fixture := range []struct {
		id, uri, src string
	}{
		{"doc-1", "one.json", docOne},
		{"doc-2", "two.json", docTwo},
	} {
		doc, err := jsondom.ParseDocument(fixture.id, fixture.uri, []byte(fixture.src))
		if err != nil {
			panic(err)
		}
		corpus.Add(doc)
	}

	oldService := searchService
	searchService = services.NewSearchService(corpus)
	return func() {
		searchService = oldService
	}
}

// mockSearchServiceError fails every operation.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Resolve(context.Context, string) ([]domain.SearchResult, error) {
	return nil, errors.New("corpus unavailable")
}

func (m *mockSearchServiceError) IsFullPath(context.Context, string) (bool, error) {
	return false, errors.New("corpus unavailable")
}

func (m *mockSearchServiceError) FindRootAnchoredPath(context.Context, string) (string, error) {
	return "", errors.New("corpus unavailable")
}

func (m *mockSearchServiceError) Suggest(context.Context, string) ([]string, error) {
	return nil, errors.New("corpus unavailable")
}

func (m *mockSearchServiceError) Paths(context.Context) ([]string, error) {
	return nil, errors.New("corpus unavailable")
}

func (m *mockSearchServiceError) InvalidateSuggestions() {}
