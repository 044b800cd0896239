package app

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/gramps-gamification/internal/cache"
	"github.com/oggyb/gramps-gamification/internal/metrics"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Metrics    *metrics.Metrics

	// Location cuts calendar days for streak bookkeeping.
	Location *time.Location
	// Now is the clock; tests pin it.
	Now func() time.Time

	XPCacheTTL time.Duration
}

// Option customizes an AppContext.
type Option func(*AppContext)

func WithClock(now func() time.Time) Option {
	return func(a *AppContext) { a.Now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(a *AppContext) {
		if loc != nil {
			a.Location = loc
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *AppContext) { a.Metrics = m }
}

func WithXPCacheTTL(ttl time.Duration) Option {
	return func(a *AppContext) {
		if ttl > 0 {
			a.XPCacheTTL = ttl
		}
	}
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, opts ...Option) *AppContext {
	a := &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Location:   time.UTC,
		Now:        time.Now,
		XPCacheTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Metrics == nil {
		a.Metrics = metrics.New()
	}
	return a
}
