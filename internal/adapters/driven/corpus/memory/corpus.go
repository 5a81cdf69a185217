// Package memory provides an in-memory corpus for tests and for
// callers that assemble documents themselves.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
	"github.com/wenmin92/JsonPathNavigator/internal/core/ports/driven"
)

// Ensure Corpus implements the interface.
var _ driven.Corpus = (*Corpus)(nil)

// Corpus is an in-memory implementation of driven.Corpus. Documents
// keep their insertion order, which is the order searches report
// results in. Every mutation bumps the generation so services can
// discard state derived from an older snapshot.
type Corpus struct {
	mu         sync.RWMutex
	docs       []*domain.Document
	generation uint64
}

// NewCorpus creates a new empty in-memory corpus.
func NewCorpus() *Corpus {
	return &Corpus{}
}

// Add inserts a document. A document with the same ID is replaced in
// place, keeping its position.
func (c *Corpus) Add(doc *domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	for i, existing := range c.docs {
		if existing.ID == doc.ID {
			c.docs[i] = doc
			return
		}
	}
	c.docs = append(c.docs, doc)
}

// Remove deletes the document with the given ID.
func (c *Corpus) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.docs {
		if existing.ID == id {
			c.generation++
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
}

// Clear drops all documents.
func (c *Corpus) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.docs = nil
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Documents returns a snapshot of the corpus in insertion order.
func (c *Corpus) Documents(_ context.Context) ([]*domain.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]*domain.Document, len(c.docs))
	copy(docs, c.docs)
	return docs, nil
}

// Generation identifies the current corpus contents.
func (c *Corpus) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
