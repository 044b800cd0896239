// Package metrics exposes prometheus counters for the gamification engines.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Streak outcomes.
const (
	StreakStarted   = "started"
	StreakContinued = "continued"
	StreakReset     = "reset"
	StreakSameDay   = "same_day"
	StreakDecayed   = "decayed"
	StreakFailed    = "failed"
)

// Metrics bundles the collectors registered on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	XPAwarded       *prometheus.CounterVec
	Awards          *prometheus.CounterVec
	AwardFailures   *prometheus.CounterVec
	LevelUps        prometheus.Counter
	StreakUpdates   *prometheus.CounterVec
	LedgerFailures  prometheus.Counter
	LedgerReplayed  prometheus.Counter
	LedgerPending   prometheus.Gauge
	AchievementsNew *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		XPAwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "xp_awarded_total",
			Help:      "XP granted, by transaction type.",
		}, []string{"type"}),
		Awards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "xp_awards_total",
			Help:      "Successful XP awards, by transaction type.",
		}, []string{"type"}),
		AwardFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "xp_award_failures_total",
			Help:      "XP awards that failed to persist, by transaction type.",
		}, []string{"type"}),
		LevelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "level_ups_total",
			Help:      "Awards that moved a user to a higher level.",
		}),
		StreakUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "streak_updates_total",
			Help:      "Streak updates, by outcome.",
		}, []string{"outcome"}),
		LedgerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "ledger_write_failures_total",
			Help:      "Ledger inserts that failed after the balance was written.",
		}),
		LedgerReplayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "ledger_replayed_total",
			Help:      "Queued ledger entries written on replay.",
		}),
		LedgerPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gramps",
			Name:      "ledger_pending",
			Help:      "Ledger entries waiting in the retry queue after the last replay.",
		}),
		AchievementsNew: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gramps",
			Name:      "achievements_unlocked_total",
			Help:      "First-time achievement unlocks, by achievement id.",
		}, []string{"achievement"}),
	}

	reg.MustRegister(
		m.XPAwarded, m.Awards, m.AwardFailures, m.LevelUps, m.StreakUpdates,
		m.LedgerFailures, m.LedgerReplayed, m.LedgerPending, m.AchievementsNew,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
