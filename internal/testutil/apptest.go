// Package testutil wires an AppContext against in-memory SQLite and miniredis
// for service tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/gramps-gamification/internal/app"
	"github.com/oggyb/gramps-gamification/internal/cache"
	"github.com/oggyb/gramps-gamification/internal/config"
	"github.com/oggyb/gramps-gamification/internal/db"
	applog "github.com/oggyb/gramps-gamification/internal/logger"
)

// Env is a test AppContext plus handles to its fakes.
type Env struct {
	App   *app.AppContext
	DB    *gorm.DB
	Redis *miniredis.Miniredis
}

// Clock is a settable test clock.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time { return c.T }

// Set moves the clock to a calendar day at noon in loc.
func (c *Clock) Set(date string, loc *time.Location) {
	d, err := time.ParseInLocation(db.DateLayout, date, loc)
	if err != nil {
		panic(err)
	}
	c.T = d.Add(12 * time.Hour)
}

// NewEnv spins up an in-memory SQLite DB, applies migrations, starts a
// miniredis and wires both into an AppContext.
//
// Each test gets its own isolated DB + Redis.
func NewEnv(t *testing.T, opts ...app.Option) *Env {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { redisCache.Close() })

	return &Env{
		App:   app.New(gdb, redisCache, applog.Discard(), opts...),
		DB:    gdb,
		Redis: mr,
	}
}
