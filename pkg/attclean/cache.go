package attclean

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"sync"

	"github.com/attclean/attclean-go/pkg/attclean/models"
)

// DefaultCacheEntries is the default number of workbooks a Cleaner remembers.
const DefaultCacheEntries = 16

// Cleaner memoizes Clean results keyed by the exact input bytes and options.
// It is safe for concurrent use. Returned tables are copies and may be
// modified freely.
type Cleaner struct {
	opts     Options
	capacity int

	mu      sync.Mutex
	entries map[string]cacheEntry
	order   []string
}

type cacheEntry struct {
	table *models.Table
	err   error
}

// NewCleaner creates a Cleaner holding at most capacity results.
// capacity <= 0 selects DefaultCacheEntries.
func NewCleaner(opts Options, capacity int) *Cleaner {
	if capacity <= 0 {
		capacity = DefaultCacheEntries
	}
	return &Cleaner{
		opts:     opts,
		capacity: capacity,
		entries:  make(map[string]cacheEntry),
	}
}

// Clean behaves like the package-level Clean, reusing earlier results for
// byte-identical input.
func (c *Cleaner) Clean(data []byte) (*models.Table, error) {
	key := c.key(data)

	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return e.table.Clone(), e.err
	}

	table, err := Clean(data, c.opts)
	// only deterministic outcomes are remembered
	if err == nil || errors.Is(err, ErrNoData) {
		c.store(key, cacheEntry{table: table, err: err})
	}
	return table.Clone(), err
}

// Len returns the number of cached results.
func (c *Cleaner) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cleaner) store(key string, e cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = e
	c.order = append(c.order, key)
}

func (c *Cleaner) key(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]) + ":" + strconv.Itoa(c.opts.lookahead())
}
