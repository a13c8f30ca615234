package engine

import (
	"fmt"
	"memdb/internal/sql"
	"memdb/internal/storage"
	"sync"
)

// DBEngine interprets statement text against a catalog.
//
// The engine holds no state of its own between calls apart from the parse
// cache; all data lives in the catalog, which the caller owns.
type DBEngine struct {
	mu      sync.Mutex // serialises statements against the catalog
	catalog storage.Catalog
	cache   *stmtCache
}

// Option configures a DBEngine.
type Option func(*options)

type options struct {
	cacheSize int
}

// DefaultCacheSize is the number of parsed statements kept by default.
const DefaultCacheSize = 1024

// WithStatementCache sets how many parsed statements are cached by their
// text. Zero or less disables the cache.
func WithStatementCache(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// New creates an engine over the given catalog.
func New(catalog storage.Catalog, opts ...Option) (*DBEngine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("engine: nil catalog")
	}

	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	cache, err := newStmtCache(o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("engine: statement cache: %w", err)
	}

	return &DBEngine{
		catalog: catalog,
		cache:   cache,
	}, nil
}

// Close releases the statement cache. The catalog is left alone.
func (e *DBEngine) Close() {
	e.cache.close()
}

// ListTables returns the names of all tables in the catalog.
func (e *DBEngine) ListTables() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.catalog.ListTables()
}

// TableSchema returns the column definitions for a table.
func (e *DBEngine) TableSchema(name string) ([]sql.Column, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.catalog.Table(name)
	if err != nil {
		return nil, err
	}
	return t.Schema().Columns(), nil
}
