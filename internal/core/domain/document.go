package domain

import "sort"

// LineIndex maps byte offsets in a source document to 1-based line numbers.
// It is built once from the source bytes and is read-only afterwards.
type LineIndex struct {
	// starts holds the byte offset of each line start; starts[0] is 0.
	starts []int64
}

// NewLineIndex builds a line index from the raw source bytes.
func NewLineIndex(src []byte) LineIndex {
	starts := make([]int64, 1, 16)
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, int64(i)+1)
		}
	}
	return LineIndex{starts: starts}
}

// LineAt returns the 1-based line containing the byte offset.
// Negative offsets map to line 1; offsets past the end map to the last line.
func (ix LineIndex) LineAt(offset int64) int {
	if len(ix.starts) == 0 {
		return 1
	}
	n := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
	if n < 1 {
		return 1
	}
	return n
}

// Document is one parsed JSON source unit.
//
// Documents are owned by the corpus that produced them and are read-only to
// the search core. Root is non-nil by construction: sources that fail to
// parse never become Documents.
type Document struct {
	// ID is the unique identifier for the document within its corpus.
	ID string

	// URI is the original location (file path, URL, etc).
	URI string

	// Root is the parsed top-level value.
	Root *Value

	// Lines maps byte offsets to 1-based line numbers.
	Lines LineIndex
}

// LineAt returns the 1-based line for a byte offset in this document.
func (d *Document) LineAt(offset int64) int {
	return d.Lines.LineAt(offset)
}
