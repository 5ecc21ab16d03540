package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"tasktree/internal/tasklist"
	repo "tasktree/internal/tasklist/repository"
)

// cachedUser is the serialized cache entry.
type cachedUser struct {
	AuthorID  string `json:"authorId"`
	Tasks     string `json:"tasks"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// GetUser serves from cache when possible, falling back to the inner
// repository and populating the cache on a miss. Only hits are cached:
// a zero-value not-found result always goes back to the store, so a
// freshly provisioned user is visible immediately.
func (r *implRepository) GetUser(ctx context.Context, authorID string) (tasklist.User, error) {
	raw, err := r.client.Get(ctx, cacheKey(authorID)).Result()
	if err == nil {
		var entry cachedUser
		if jsonErr := json.Unmarshal([]byte(raw), &entry); jsonErr == nil {
			return entry.toUser(), nil
		}
		// Corrupt entry: drop it and fall through to the store.
		r.client.Del(ctx, cacheKey(authorID))
	} else if !errors.Is(err, redis.Nil) {
		r.l.Warnf(ctx, "rediscache: GET failed, falling back to store: %v", err)
	}

	user, err := r.inner.GetUser(ctx, authorID)
	if err != nil {
		return tasklist.User{}, err
	}
	if user.AuthorID != "" {
		r.set(ctx, user)
	}
	return user, nil
}

// CreateUser writes through and primes the cache.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (tasklist.User, error) {
	user, err := r.inner.CreateUser(ctx, opt)
	if err != nil {
		return tasklist.User{}, err
	}
	r.set(ctx, user)
	return user, nil
}

// UpdateTasks writes through and refreshes the cache entry.
func (r *implRepository) UpdateTasks(ctx context.Context, opt repo.UpdateTasksOptions) (tasklist.User, error) {
	user, err := r.inner.UpdateTasks(ctx, opt)
	if err != nil {
		return tasklist.User{}, err
	}
	if user.AuthorID == "" {
		// Not found in the store; nothing to refresh.
		return user, nil
	}
	r.set(ctx, user)
	return user, nil
}

// DeleteUser writes through and invalidates.
func (r *implRepository) DeleteUser(ctx context.Context, authorID string) (bool, error) {
	deleted, err := r.inner.DeleteUser(ctx, authorID)
	if err != nil {
		return false, err
	}
	if delErr := r.client.Del(ctx, cacheKey(authorID)).Err(); delErr != nil {
		r.l.Warnf(ctx, "rediscache: DEL failed for %s: %v", authorID, delErr)
	}
	return deleted, nil
}

func (r *implRepository) set(ctx context.Context, user tasklist.User) {
	entry := cachedUser{
		AuthorID:  user.AuthorID,
		Tasks:     user.Tasks,
		CreatedAt: user.CreatedAt.Unix(),
		UpdatedAt: user.UpdatedAt.Unix(),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if setErr := r.client.Set(ctx, cacheKey(user.AuthorID), raw, r.ttl).Err(); setErr != nil {
		r.l.Warnf(ctx, "rediscache: SET failed for %s: %v", user.AuthorID, setErr)
	}
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func (c cachedUser) toUser() tasklist.User {
	return tasklist.User{
		AuthorID:  c.AuthorID,
		Tasks:     c.Tasks,
		CreatedAt: unixTime(c.CreatedAt),
		UpdatedAt: unixTime(c.UpdatedAt),
	}
}
