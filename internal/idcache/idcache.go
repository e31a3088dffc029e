// Package idcache provides caches that resolve names of GitHub labels and
// project columns to their GraphQL node IDs.
package idcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/simplesurance/mergebot/internal/logfields"
	"github.com/simplesurance/mergebot/internal/reconcile"
)

// DefTTL is the default duration that loaded IDs are kept.
const DefTTL = 15 * time.Minute

// FetchFunc returns all existing names and their IDs.
type FetchFunc func(ctx context.Context) (map[string]string, error)

// Cache keeps the result of a FetchFunc for a TTL.
// When a name is not found, the cache is reloaded once before failing.
// Concurrent loads are collapsed into a single FetchFunc invocation.
type Cache struct {
	kind  string
	fetch FetchFunc
	ttl   time.Duration

	lock     sync.Mutex
	ids      map[string]string
	loadedAt time.Time

	loadGroup singleflight.Group

	logger *zap.Logger
	now    func() time.Time
}

func newCache(kind string, fetch FetchFunc, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefTTL
	}

	return &Cache{
		kind:   kind,
		fetch:  fetch,
		ttl:    ttl,
		logger: zap.L().Named("idcache").With(zap.String("kind", kind)),
		now:    time.Now,
	}
}

func (c *Cache) cached() (ids map[string]string, fresh bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.ids, c.ids != nil && c.now().Sub(c.loadedAt) < c.ttl
}

// load fetches the IDs. Concurrent calls share one fetch, it runs on a
// context that is not cancelled when the context of one of the waiting
// callers is. A caller stops waiting when its own ctx is done.
func (c *Cache) load(ctx context.Context) (map[string]string, error) {
	fetchCtx := context.WithoutCancel(ctx)

	ch := c.loadGroup.DoChan(c.kind, func() (any, error) {
		ids, err := c.fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		c.lock.Lock()
		c.ids = ids
		c.loadedAt = c.now()
		c.lock.Unlock()

		c.logger.Debug(
			"loaded ids",
			logfields.Event("idcache_loaded"),
			zap.Int("count", len(ids)),
		)

		return ids, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("loading %s ids failed: %w", c.kind, ctx.Err())

	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("loading %s ids failed: %w", c.kind, res.Err)
		}

		return res.Val.(map[string]string), nil
	}
}

// Lookup returns the ID for name.
// If no entry for name exists, an error wrapping reconcile.ErrNotFound is
// returned.
func (c *Cache) Lookup(ctx context.Context, name string) (string, error) {
	ids, fresh := c.cached()
	if fresh {
		if id, exists := ids[name]; exists {
			return id, nil
		}
	}

	ids, err := c.load(ctx)
	if err != nil {
		return "", err
	}

	if id, exists := ids[name]; exists {
		return id, nil
	}

	return "", fmt.Errorf("no %s named %q exists: %w", c.kind, name, reconcile.ErrNotFound)
}

// Invalidate drops the cached entries.
func (c *Cache) Invalidate() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.ids = nil
}

// Labels resolves label names to IDs.
type Labels struct {
	*Cache
}

// NewLabels returns a label cache that loads the IDs via fetch and keeps
// them for ttl. If ttl is <=0, DefTTL is used.
func NewLabels(fetch FetchFunc, ttl time.Duration) *Labels {
	return &Labels{Cache: newCache("label", fetch, ttl)}
}

// LabelID returns the node ID of the label with the given name.
func (l *Labels) LabelID(ctx context.Context, name string) (string, error) {
	return l.Lookup(ctx, name)
}

// Columns resolves column names of a project board to IDs.
type Columns struct {
	*Cache
}

// NewColumns returns a project column cache that loads the IDs via fetch
// and keeps them for ttl. If ttl is <=0, DefTTL is used.
func NewColumns(fetch FetchFunc, ttl time.Duration) *Columns {
	return &Columns{Cache: newCache("project column", fetch, ttl)}
}

// ColumnID returns the node ID of the project column with the given name.
func (c *Columns) ColumnID(ctx context.Context, name string) (string, error) {
	return c.Lookup(ctx, name)
}
