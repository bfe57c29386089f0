package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"blog-service/internal/domain/entities"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const (
	postKeyPrefix    = "post:"
	postsListPrefix  = "posts:list:"
	postsListDefault = postsListPrefix + "default"
	postsListPattern = postsListPrefix + "*"
	DefaultCacheTTL  = time.Hour
	defaultCacheWait = 500 * time.Millisecond
	invalidateBatch  = 100
)

// CachedPostList is a page of a filtered listing together with the total
// number of matching posts.
type CachedPostList struct {
	Posts []entities.Post `json:"posts"`
	Total int64           `json:"total"`
}

// RedisService is the post cache. Every failure is logged and reported as a
// miss, a nil client disables the cache.
type RedisService struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
	logger  zerolog.Logger
}

func NewRedisService(client *redis.Client, ttl, timeout time.Duration, logger zerolog.Logger) *RedisService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if timeout <= 0 {
		timeout = defaultCacheWait
	}
	return &RedisService{
		client:  client,
		ttl:     ttl,
		timeout: timeout,
		logger:  logger.With().Str("component", "post_cache").Logger(),
	}
}

func PostKey(id uint) string {
	return postKeyPrefix + strconv.FormatUint(uint64(id), 10)
}

// PostsListKey serializes the non-empty filter fields in key order, e.g.
// posts:list:author_id:3:limit:10:skip:0.
func PostsListKey(filters map[string]string) string {
	keys := make([]string, 0, len(filters))
	for k, v := range filters {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return postsListDefault
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+filters[k])
	}
	return postsListPrefix + strings.Join(parts, ":")
}

func (r *RedisService) GetPost(ctx context.Context, id uint) (*entities.Post, bool) {
	var post entities.Post
	if !r.get(ctx, PostKey(id), &post) {
		return nil, false
	}
	return &post, true
}

func (r *RedisService) PutPost(ctx context.Context, post *entities.Post) {
	r.set(ctx, PostKey(post.ID), post)
}

func (r *RedisService) InvalidatePost(ctx context.Context, id uint) {
	if r.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, PostKey(id)).Err(); err != nil {
		r.logger.Warn().Err(err).Uint("post_id", id).Msg("invalidate post failed")
	}
}

func (r *RedisService) GetPostsList(ctx context.Context, key string) (*CachedPostList, bool) {
	var list CachedPostList
	if !r.get(ctx, key, &list) {
		return nil, false
	}
	return &list, true
}

func (r *RedisService) PutPostsList(ctx context.Context, key string, posts []*entities.Post, total int64) {
	list := CachedPostList{Posts: make([]entities.Post, 0, len(posts)), Total: total}
	for _, p := range posts {
		list.Posts = append(list.Posts, *p)
	}
	r.set(ctx, key, list)
}

// InvalidateAllPostsLists removes every key under the list namespace.
func (r *RedisService) InvalidateAllPostsLists(ctx context.Context) {
	if r.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.deletePattern(ctx, postsListPattern); err != nil {
		r.logger.Warn().Err(err).Msg("invalidate post lists failed")
	}
}

func (r *RedisService) deletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, invalidateBatch).Result()
		if err != nil {
			return fmt.Errorf("scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete %d keys: %w", len(keys), err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *RedisService) get(ctx context.Context, key string, dst interface{}) bool {
	if r.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache entry is corrupt")
		return false
	}
	return true
}

func (r *RedisService) set(ctx context.Context, key string, value interface{}) {
	if r.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
