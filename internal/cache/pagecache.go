package cache

import (
	"context"
	"log/slog"
	"time"

	"quill/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// pageKeyPrefix namespaces cached page bodies so Clear can evict them without
// touching unrelated keys in the same Redis database.
const pageKeyPrefix = "feedpage:"

// PageCache stores fully rendered feed page bodies keyed by the request's
// resolved URL, each entry expiring after a fixed TTL.
//
// It is constructed once at process start and passed by reference to the
// feed-serving layer; it is never accessed as an ambient singleton. The cache
// is strictly best-effort: any Redis failure is treated as a miss and the
// request proceeds against the store.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache returns a PageCache over the given client. A nil client yields
// a cache that always misses, which keeps the feed path working without Redis.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// TTL reports the configured time-to-live of cached pages.
func (p *PageCache) TTL() time.Duration {
	return p.ttl
}

// Get returns the cached body for key if present and not expired.
func (p *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if p == nil || p.client == nil {
		return nil, false
	}
	body, err := p.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			middleware.Logger.WarnContext(ctx, "page cache get failed, treating as miss",
				slog.String("key", key), slog.String("error", err.Error()))
		}
		middleware.FeedCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	middleware.FeedCacheHits.WithLabelValues("hit").Inc()
	return body, true
}

// Put stores body under key with expiry now + TTL. Failures are logged and
// swallowed; a page that fails to cache is simply rendered again next time.
func (p *PageCache) Put(ctx context.Context, key string, body []byte) {
	if p == nil || p.client == nil {
		return
	}
	if err := p.client.Set(ctx, pageKeyPrefix+key, body, p.ttl).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "page cache put failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Clear evicts every cached page immediately, regardless of remaining TTL.
// Writes that must be visible right away (administrative actions, test
// teardown) call this; ordinary post writes do not, so global feed reads stay
// eventually consistent within the TTL window.
func (p *PageCache) Clear(ctx context.Context) {
	if p == nil || p.client == nil {
		return
	}
	iter := p.client.Scan(ctx, 0, pageKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "page cache clear scan failed",
			slog.String("error", err.Error()))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "page cache clear failed",
			slog.String("error", err.Error()))
	}
}
