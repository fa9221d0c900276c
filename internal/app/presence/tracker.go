// Package presence records when authenticated users were last seen.
package presence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Tracker interface {
	// Touch records userID as seen at the given time.
	Touch(ctx context.Context, userID string, at time.Time) error
	// LastSeen returns the last recorded time for each known user id.
	LastSeen(ctx context.Context, userIDs []string) (map[string]time.Time, error)
	// Prune drops entries last seen before cutoff and reports how many went.
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

// RedisTracker keeps one sorted set scored by unix seconds.
type RedisTracker struct {
	rdb *redis.Client
	key string
}

func NewRedisTracker(rdb *redis.Client, key string) *RedisTracker {
	return &RedisTracker{rdb: rdb, key: key}
}

func (t *RedisTracker) Touch(ctx context.Context, userID string, at time.Time) error {
	err := t.rdb.ZAdd(ctx, t.key, redis.Z{Score: float64(at.Unix()), Member: userID}).Err()
	if err != nil {
		return fmt.Errorf("presence touch %s: %w", userID, err)
	}
	return nil
}

func (t *RedisTracker) LastSeen(ctx context.Context, userIDs []string) (map[string]time.Time, error) {
	seen := make(map[string]time.Time, len(userIDs))
	if len(userIDs) == 0 {
		return seen, nil
	}

	scores, err := t.rdb.ZMScore(ctx, t.key, userIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("presence lookup: %w", err)
	}
	for i, score := range scores {
		if score > 0 {
			seen[userIDs[i]] = time.Unix(int64(score), 0).UTC()
		}
	}
	return seen, nil
}

func (t *RedisTracker) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	// exclusive upper bound so a user seen exactly at cutoff survives
	upper := "(" + strconv.FormatInt(cutoff.Unix(), 10)
	n, err := t.rdb.ZRemRangeByScore(ctx, t.key, "-inf", upper).Result()
	if err != nil {
		return 0, fmt.Errorf("presence prune: %w", err)
	}
	return n, nil
}

// NopTracker is used when Redis is disabled; nobody is ever online.
type NopTracker struct{}

func (NopTracker) Touch(context.Context, string, time.Time) error { return nil }

func (NopTracker) LastSeen(context.Context, []string) (map[string]time.Time, error) {
	return map[string]time.Time{}, nil
}

func (NopTracker) Prune(context.Context, time.Time) (int64, error) { return 0, nil }
