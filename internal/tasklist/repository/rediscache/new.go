// Package rediscache decorates a tasklist Repository with a read-through
// Redis cache for the per-user task blob. Redis failures are fail-open:
// every error falls back to the inner repository so the cache can never
// take the service down.
package rediscache

import (
	"time"

	redis "github.com/redis/go-redis/v9"

	"tasktree/internal/tasklist/repository"
	"tasktree/pkg/log"
)

const defaultTTL = 5 * time.Minute

type implRepository struct {
	inner  repository.Repository
	client *redis.Client
	ttl    time.Duration
	l      log.Logger
}

// New wraps inner with a Redis cache. A nil client returns inner unchanged.
func New(inner repository.Repository, client *redis.Client, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implRepository{inner: inner, client: client, ttl: ttl, l: l}
}

func cacheKey(authorID string) string {
	return "tasktree:user:" + authorID
}
