package engine

import (
	"memdb/internal/sql"

	"github.com/dgraph-io/ristretto/v2"
)

// stmtCache maps raw statement text to its parsed form. Parsing does not
// depend on catalog state, so a cached AST stays valid across statements.
// A nil *stmtCache is a disabled cache.
type stmtCache struct {
	c *ristretto.Cache[string, sql.Statement]
}

func newStmtCache(size int) (*stmtCache, error) {
	if size <= 0 {
		return nil, nil
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, sql.Statement]{
		NumCounters: int64(size) * 10,
		MaxCost:     int64(size),
		BufferItems: 64,
		Metrics:     true,

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &stmtCache{c: c}, nil
}

func (sc *stmtCache) get(query string) (sql.Statement, bool) {
	if sc == nil {
		return nil, false
	}
	return sc.c.Get(query)
}

// put stores stmt with a cost of one, so MaxCost bounds the entry count.
func (sc *stmtCache) put(query string, stmt sql.Statement) {
	if sc == nil {
		return
	}
	sc.c.Set(query, stmt, 1)
}

// wait blocks until buffered writes are visible to get.
func (sc *stmtCache) wait() {
	if sc == nil {
		return
	}
	sc.c.Wait()
}

func (sc *stmtCache) hits() uint64 {
	if sc == nil {
		return 0
	}
	return sc.c.Metrics.Hits()
}

func (sc *stmtCache) close() {
	if sc == nil {
		return
	}
	sc.c.Close()
}
