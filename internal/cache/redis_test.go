package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/gramps-gamification/internal/cache"
	"github.com/oggyb/gramps-gamification/internal/config"
	"github.com/oggyb/gramps-gamification/internal/db"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	c := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestUserXPCache(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	miss, err := c.GetUserXP(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, miss)

	row := &db.UserXP{ID: 7, UserID: "u1", TotalXP: 51, CurrentLevel: 2, XPToNextLevel: 69}
	stored, err := c.SetUserXP(ctx, row, time.Hour)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.True(t, mr.Exists("xp:user:u1"))
	assert.Equal(t, time.Hour, mr.TTL("xp:user:u1"))

	got, err := c.GetUserXP(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 51, got.TotalXP)
	assert.Equal(t, 2, got.CurrentLevel)

	require.NoError(t, c.InvalidateUserXP(ctx, "u1"))
	got, err = c.GetUserXP(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserXPCache_Expires(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	_, err := c.SetUserXP(ctx, &db.UserXP{UserID: "u1", TotalXP: 5}, time.Minute)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	got, err := c.GetUserXP(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserXPCache_KeepsHigherTotal(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	stored, err := c.SetUserXP(ctx, &db.UserXP{UserID: "u1", TotalXP: 12}, time.Hour)
	require.NoError(t, err)
	assert.True(t, stored)

	// an older read arriving late does not replace the newer balance
	mr.FastForward(30 * time.Minute)
	stored, err = c.SetUserXP(ctx, &db.UserXP{UserID: "u1", TotalXP: 10}, time.Hour)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, 30*time.Minute, mr.TTL("xp:user:u1"))

	got, err := c.GetUserXP(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.TotalXP)

	// equal totals refresh the row
	stored, err = c.SetUserXP(ctx, &db.UserXP{UserID: "u1", TotalXP: 12, CurrentLevel: 1}, time.Hour)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, time.Hour, mr.TTL("xp:user:u1"))
}

func TestPendingLedgerQueue(t *testing.T) {
	ctx := context.Background()
	c, _ := setupCache(t)

	empty, err := c.PopPendingLedger(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)

	require.NoError(t, c.PushPendingLedger(ctx, &db.XPTransaction{UserID: "u1", XPAmount: 2}))
	require.NoError(t, c.PushPendingLedger(ctx, &db.XPTransaction{UserID: "u1", XPAmount: 10}))

	n, err := c.PendingLedgerLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	first, err := c.PopPendingLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.XPAmount)

	// requeued entries come out first again
	require.NoError(t, c.RequeuePendingLedger(ctx, first))
	again, err := c.PopPendingLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, again.XPAmount)

	second, err := c.PopPendingLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, second.XPAmount)
}
