package names

import (
	"os"
	"path/filepath"
	"sync"

	insaneJSON "github.com/ozontech/insane-json"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/RemiKalbe/unicode-explorer/logger"
)

// Map is a per-block name lookup: zero-padded uppercase hex key to
// display name.
type Map map[string]string

type entry struct {
	// wg is non-nil while the first load for the slug is in flight;
	// waiters block on it and then read m without the lock
	wg *sync.WaitGroup
	// m is written once before wg.Done, read-only afterwards
	m Map
}

// Loader reads per-block name files emitted by ucd-builder and caches
// them in memory for the process lifetime. Population is at-most-once
// per block. Names are cosmetic: a missing or malformed file is cached
// as an empty map, never surfaced as an error.
type Loader struct {
	dir string

	mu      sync.Mutex
	entries map[string]*entry

	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewLoader(dir string) *Loader {
	return &Loader{
		dir:     dir,
		entries: make(map[string]*entry),
	}
}

// Load returns the name map of the block with the given slug, reading
// the file on first request. Concurrent first requests for one slug
// perform a single read; the rest wait for it.
func (l *Loader) Load(slug string) Map {
	l.mu.Lock()
	e, ok := l.entries[slug]
	if ok {
		wg := e.wg
		l.mu.Unlock()
		if wg != nil {
			wg.Wait()
		}
		l.hits.Inc()
		return e.m
	}

	e = &entry{wg: &sync.WaitGroup{}}
	e.wg.Add(1)
	l.entries[slug] = e
	l.mu.Unlock()

	l.misses.Inc()
	m := l.read(slug)

	l.mu.Lock()
	e.m = m
	wg := e.wg
	e.wg = nil
	l.mu.Unlock()
	wg.Done()

	return m
}

// Stats returns cache hits and misses since creation.
func (l *Loader) Stats() (hits, misses uint64) {
	return l.hits.Load(), l.misses.Load()
}

func (l *Loader) read(slug string) Map {
	path := filepath.Join(l.dir, slug+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("no name file for block", zap.String("slug", slug), zap.Error(err))
		return Map{}
	}

	root, err := insaneJSON.DecodeBytes(data)
	if err != nil {
		logger.Warn("malformed name file", zap.String("path", path), zap.Error(err))
		return Map{}
	}
	defer insaneJSON.Release(root)

	if !root.IsObject() {
		logger.Warn("name file is not an object", zap.String("path", path))
		return Map{}
	}

	m := make(Map)
	for _, field := range root.AsFields() {
		m[field.AsString()] = field.AsFieldValue().AsString()
	}
	return m
}
