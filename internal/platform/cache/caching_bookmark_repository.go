// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bookmarks_backend/internal/feature/bookmark/domain/entity"
	"bookmarks_backend/internal/feature/bookmark/usecase"
)

// CachingBookmarkRepository decorates a BookmarkRepository with Redis
// caching of per-user list results. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
// Every mutation invalidates the owner's cached list, so reads after a
// write always reflect the store.
type CachingBookmarkRepository struct {
	inner     usecase.BookmarkRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.BookmarkRepository = (*CachingBookmarkRepository)(nil)

// NewCachingBookmarkRepository decorates a BookmarkRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty,
// it uses "bookmarks". A nil rdb disables caching entirely.
func NewCachingBookmarkRepository(rdb *redis.Client, ttl time.Duration, inner usecase.BookmarkRepository, namespace string) *CachingBookmarkRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "bookmarks"
	}
	return &CachingBookmarkRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListByUser retrieves the user's bookmarks, checking cache first then
// falling back to the database.
func (c *CachingBookmarkRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Bookmark, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByUser(ctx, userID)
	}

	key := c.listKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Bookmark
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts the bookmark and invalidates the owner's cached list.
func (c *CachingBookmarkRepository) Create(ctx context.Context, b *entity.Bookmark) error {
	if err := c.inner.Create(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, b.UserID)
	return nil
}

// FindFirst is never cached; ownership-scoped single reads go straight to
// the store.
func (c *CachingBookmarkRepository) FindFirst(ctx context.Context, id, userID uint) (*entity.Bookmark, error) {
	return c.inner.FindFirst(ctx, id, userID)
}

// FindByID is never cached; it feeds the fetch-then-check sequence of
// edit/delete and must always see fresh ownership.
func (c *CachingBookmarkRepository) FindByID(ctx context.Context, id uint) (*entity.Bookmark, error) {
	return c.inner.FindByID(ctx, id)
}

// Update saves the bookmark and invalidates the owner's cached list.
func (c *CachingBookmarkRepository) Update(ctx context.Context, b *entity.Bookmark) error {
	if err := c.inner.Update(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, b.UserID)
	return nil
}

// Delete removes the bookmark and invalidates the owner's cached list.
func (c *CachingBookmarkRepository) Delete(ctx context.Context, b *entity.Bookmark) error {
	if err := c.inner.Delete(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, b.UserID)
	return nil
}

// listKey generates the cache key for a user's bookmark list.
func (c *CachingBookmarkRepository) listKey(userID uint) string {
	return fmt.Sprintf("%s:list:%d", c.namespace, userID)
}

// invalidate drops the cached list for a user. Best effort: a failed
// deletion leaves a stale entry until the TTL expires.
func (c *CachingBookmarkRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(userID)).Err()
}
