package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/gramps-gamification/internal/config"
	"github.com/oggyb/gramps-gamification/internal/db"
)

// KeyPendingLedger is the list holding ledger entries whose insert failed.
const KeyPendingLedger = "xp:ledger:pending"

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// KeyForUserXP generates Redis key for a user's cached XP balance
func (c *RedisCache) KeyForUserXP(userID string) string {
	return fmt.Sprintf("xp:user:%s", userID)
}

// setUserXPScript stores a balance hash {row, total_xp} unless the cached one
// already has a higher total. Totals only grow, so a lower one is stale.
// KEYS[1] = key, ARGV = row JSON, total, ttl in ms.
var setUserXPScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'total_xp')
if cur and tonumber(cur) > tonumber(ARGV[2]) then
	return 0
end
redis.call('HSET', KEYS[1], 'row', ARGV[1], 'total_xp', ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
return 1
`)

// SetUserXP caches a balance row and refreshes its TTL. A cached row with a
// higher total is kept; the returned bool reports whether row was stored.
func (c *RedisCache) SetUserXP(ctx context.Context, row *db.UserXP, ttl time.Duration) (bool, error) {
	b, err := json.Marshal(row)
	if err != nil {
		return false, fmt.Errorf("marshal user xp: %w", err)
	}
	stored, err := setUserXPScript.Run(ctx, c.Client,
		[]string{c.KeyForUserXP(row.UserID)},
		string(b), row.TotalXP, ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// GetUserXP reads a cached balance row. A miss returns (nil, nil).
func (c *RedisCache) GetUserXP(ctx context.Context, userID string) (*db.UserXP, error) {
	val, err := c.Client.HGet(ctx, c.KeyForUserXP(userID), "row").Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	} else if err != nil {
		return nil, err
	}
	var row db.UserXP
	if err := json.Unmarshal(val, &row); err != nil {
		return nil, fmt.Errorf("unmarshal user xp: %w", err)
	}
	return &row, nil
}

// InvalidateUserXP drops a cached balance row.
func (c *RedisCache) InvalidateUserXP(ctx context.Context, userID string) error {
	return c.Del(ctx, c.KeyForUserXP(userID))
}

// PushPendingLedger queues a ledger entry for a later insert.
func (c *RedisCache) PushPendingLedger(ctx context.Context, tx *db.XPTransaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("marshal ledger entry: %w", err)
	}
	return c.Client.RPush(ctx, KeyPendingLedger, b).Err()
}

// PopPendingLedger takes the oldest queued entry. Empty queue returns (nil, nil).
func (c *RedisCache) PopPendingLedger(ctx context.Context) (*db.XPTransaction, error) {
	val, err := c.Client.LPop(ctx, KeyPendingLedger).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var tx db.XPTransaction
	if err := json.Unmarshal(val, &tx); err != nil {
		return nil, fmt.Errorf("unmarshal ledger entry: %w", err)
	}
	return &tx, nil
}

// RequeuePendingLedger puts an entry back at the head of the queue.
func (c *RedisCache) RequeuePendingLedger(ctx context.Context, tx *db.XPTransaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("marshal ledger entry: %w", err)
	}
	return c.Client.LPush(ctx, KeyPendingLedger, b).Err()
}

// PendingLedgerLen reports how many entries wait for replay.
func (c *RedisCache) PendingLedgerLen(ctx context.Context) (int64, error) {
	return c.Client.LLen(ctx, KeyPendingLedger).Result()
}
