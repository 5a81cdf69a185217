// Package filesystem loads JSON files from disk into an in-memory
// corpus. Files are parsed by a small worker pool and parsed trees are
// reused across loads through an LRU cache keyed by path, size and
// modification time. Files that fail to read or parse are skipped with
// a warning; one broken file never aborts a load.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2"

	"github.com/wenmin92/JsonPathNavigator/internal/adapters/driven/corpus/memory"
	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
	"github.com/wenmin92/JsonPathNavigator/internal/jsondom"
	"github.com/wenmin92/JsonPathNavigator/internal/logger"
)

// DefaultCacheSize bounds the parsed-document cache.
const DefaultCacheSize = 1024

// defaultIgnoreDirs are directory names skipped during walks.
var defaultIgnoreDirs = []string{".git", "node_modules", "vendor"}

// Options configures a Loader. The zero value is usable.
type Options struct {
	// Workers is the number of parse workers. <=0 uses GOMAXPROCS.
	Workers int

	// CacheSize is the number of parsed documents kept across loads.
	// <=0 uses DefaultCacheSize.
	CacheSize int

	// IgnoreDirs are directory names excluded from walks. Nil uses
	// the defaults (.git, node_modules, vendor).
	IgnoreDirs []string

	// Extensions are the file extensions loaded, with or without the
	// leading dot. Nil loads only .json files.
	Extensions []string
}

// Loader builds corpora from files on disk.
type Loader struct {
	workers int
	ignored map[string]bool
	exts    []string
	cache   *lru.Cache[string, *domain.Document]
}

// NewLoader creates a loader with the given options.
func NewLoader(opts Options) (*Loader, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *domain.Document](size)
	if err != nil {
		return nil, fmt.Errorf("create document cache: %w", err)
	}

	ignoreDirs := opts.IgnoreDirs
	if ignoreDirs == nil {
		ignoreDirs = defaultIgnoreDirs
	}
	ignored := make(map[string]bool, len(ignoreDirs))
	for _, dir := range ignoreDirs {
		ignored[dir] = true
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".json"}
	}
	normalized := make([]string, len(exts))
	for i, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized[i] = ext
	}

	return &Loader{
		workers: opts.Workers,
		ignored: ignored,
		exts:    normalized,
		cache:   cache,
	}, nil
}

// Load parses every matching file under the given roots into a fresh
// corpus. Roots are processed in argument order, files within a root in
// walk order, and a file reachable through more than one root is loaded
// once. A root that is a regular file is loaded directly, bypassing the
// extension filter.
func (l *Loader) Load(ctx context.Context, roots ...string) (*memory.Corpus, error) {
	logger.Section("Corpus Load")

	var paths []string
	seen := make(map[string]bool)
	for _, root := range roots {
		logger.Debug("Root: %s", root)
		found, err := l.collect(root)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			if seen[path] {
				continue
			}
			seen[path] = true
			paths = append(paths, path)
		}
	}
	logger.Debug("Found %d candidate files", len(paths))

	return l.load(ctx, paths)
}

// LoadFiles parses the given files into a fresh corpus, preserving the
// argument order.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) (*memory.Corpus, error) {
	logger.Section("Corpus Load")
	logger.Debug("Loading %d explicit files", len(paths))

	cleaned := make([]string, len(paths))
	for i, path := range paths {
		cleaned[i] = filepath.Clean(path)
	}
	return l.load(ctx, cleaned)
}

// collect walks root and gathers the files to parse.
func (l *Loader) collect(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && l.ignored[d.Name()] {
				logger.Debug("Ignoring directory %s", path)
				return fs.SkipDir
			}
			return nil
		}
		if l.wantFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}

func (l *Loader) wantFile(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range l.exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// load parses paths with a worker pool. Slots in the result slice keep
// the input order so the corpus is deterministic regardless of which
// worker finishes first.
func (l *Loader) load(ctx context.Context, paths []string) (*memory.Corpus, error) {
	workers := l.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	docs := make([]*domain.Document, len(paths))
	tasks := make(chan int, len(paths))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-tasks:
					if !ok {
						return
					}
					doc, err := l.parseFile(paths[i])
					if err != nil {
						logger.Warn("Skipping %s: %v", paths[i], err)
						continue
					}
					docs[i] = doc
				}
			}
		}()
	}

	for i := range paths {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	corpus := memory.NewCorpus()
	for _, doc := range docs {
		if doc != nil {
			corpus.Add(doc)
		}
	}
	logger.Info("Loaded %d of %d files", corpus.Len(), len(paths))
	return corpus, nil
}

// parseFile returns the parsed document for path, reusing the cached
// tree while the file's size and mtime are unchanged. Parsed documents
// are immutable, so sharing them across corpora is safe.
func (l *Loader) parseFile(path string) (*domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	key := cacheKey(path, info)
	if doc, ok := l.cache.Get(key); ok {
		logger.Debug("Cache hit: %s", path)
		return doc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := jsondom.ParseDocument(uuid.New().String(), path, data)
	if err != nil {
		return nil, err
	}

	l.cache.Add(key, doc)
	return doc, nil
}

func cacheKey(path string, info os.FileInfo) string {
	return fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
}
