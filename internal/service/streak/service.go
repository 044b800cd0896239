package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/oggyb/gramps-gamification/internal/app"
	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/metrics"
	"github.com/oggyb/gramps-gamification/internal/repository"
)

// Update is the outcome of UpdateStreak.
type Update struct {
	Streak *db.UserStreak
	// Advanced is true when this call was the first activity of the day and
	// moved the streak. Streak XP is only due when Advanced.
	Advanced bool
}

// Service tracks consecutive-day activity per user.
type Service struct {
	appCtx *app.AppContext
	repo   *repository.StreakRepository
}

// NewService creates the streak tracker with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		repo:   repository.NewStreakRepository(appCtx.DB),
	}
}

// days returns today and yesterday as calendar dates in the configured location.
func (s *Service) days() (today, yesterday string) {
	now := s.appCtx.Now().In(s.appCtx.Location)
	y := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, s.appCtx.Location)
	return now.Format(db.DateLayout), y.Format(db.DateLayout)
}

// advance applies the first activity of today to a streak row and returns the
// outcome label.
func advance(st *db.UserStreak, today, yesterday string) string {
	outcome := metrics.StreakStarted
	switch {
	case st.LastActivityDate == nil:
		st.CurrentStreak = 1
	case *st.LastActivityDate == yesterday:
		st.CurrentStreak++
		outcome = metrics.StreakContinued
	default:
		// a gap of two or more days, or today already counted without a day row
		st.CurrentStreak = 1
		outcome = metrics.StreakReset
	}
	st.LongestStreak = max(st.LongestStreak, st.CurrentStreak)
	st.TotalMemories++
	d := today
	st.LastActivityDate = &d
	return outcome
}

// UpdateStreak records one qualifying activity for today.
//
// Behavior:
//   - First activity of the day: inserts the daily_activities row, moves the
//     streak (continue, reset or start) and bumps total_memories.
//   - Later activities the same day: only memories_recorded of the day row
//     grows; the streak row is returned unchanged.
//   - Any persistence error rolls back and is returned; callers must not award
//     streak XP then.
func (s *Service) UpdateStreak(ctx context.Context, userID string) (*Update, error) {
	today, yesterday := s.days()
	log := s.appCtx.Logger.With("user_id", userID, "today", today)
	log.Debug("UpdateStreak called")

	var (
		out     Update
		outcome string
	)
	err := s.repo.Transaction(ctx, func(tx *repository.StreakRepository) error {
		st, err := tx.GetOrCreate(ctx, userID, true)
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}

		inserted, err := tx.InsertDailyActivity(ctx, userID, today)
		if err != nil {
			return fmt.Errorf("insert daily activity: %w", err)
		}
		if !inserted {
			if err := tx.IncrementDailyActivity(ctx, userID, today); err != nil {
				return fmt.Errorf("increment daily activity: %w", err)
			}
			out = Update{Streak: st}
			outcome = metrics.StreakSameDay
			return nil
		}

		outcome = advance(st, today, yesterday)
		if err := tx.Save(ctx, st); err != nil {
			return fmt.Errorf("save streak: %w", err)
		}
		out = Update{Streak: st, Advanced: true}
		return nil
	})
	if err != nil {
		s.appCtx.Metrics.StreakUpdates.WithLabelValues(metrics.StreakFailed).Inc()
		log.Error("failed to update streak", "err", err)
		return nil, fmt.Errorf("update streak: %w", err)
	}

	s.appCtx.Metrics.StreakUpdates.WithLabelValues(outcome).Inc()
	log.Debug("streak updated", "outcome", outcome,
		"current", out.Streak.CurrentStreak, "longest", out.Streak.LongestStreak)
	return &out, nil
}

// GetStreak returns the streak row, or nil when the user has no activity yet.
func (s *Service) GetStreak(ctx context.Context, userID string) (*db.UserStreak, error) {
	st, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("failed to fetch streak", "user_id", userID, "err", err)
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return st, nil
}

// CheckAndResetStreak zeroes current_streak when the user missed a full day,
// without recording a new activity. longest_streak and total_memories are kept.
// Users without a row get the zero-state row created.
func (s *Service) CheckAndResetStreak(ctx context.Context, userID string) (*db.UserStreak, error) {
	today, yesterday := s.days()

	reset, err := s.repo.ResetIfInactive(ctx, userID, today, yesterday)
	if err != nil {
		s.appCtx.Logger.Error("failed to reset streak", "user_id", userID, "err", err)
		return nil, fmt.Errorf("check streak: %w", err)
	}
	if reset {
		s.appCtx.Metrics.StreakUpdates.WithLabelValues(metrics.StreakDecayed).Inc()
		s.appCtx.Logger.Info("streak decayed", "user_id", userID, "today", today)
	}

	st, err := s.repo.GetOrCreate(ctx, userID, false)
	if err != nil {
		s.appCtx.Logger.Error("failed to fetch streak", "user_id", userID, "err", err)
		return nil, fmt.Errorf("check streak: %w", err)
	}
	return st, nil
}

// ListDailyActivity returns day rows between from and to inclusive, oldest
// first. Bounds are cut to calendar dates in the configured location.
func (s *Service) ListDailyActivity(ctx context.Context, userID string, from, to time.Time) ([]db.DailyActivity, error) {
	loc := s.appCtx.Location
	f := from.In(loc).Format(db.DateLayout)
	t := to.In(loc).Format(db.DateLayout)
	if f > t {
		f, t = t, f
	}

	rows, err := s.repo.ListDailyActivity(ctx, userID, f, t)
	if err != nil {
		s.appCtx.Logger.Error("failed to list daily activity", "user_id", userID, "err", err)
		return nil, fmt.Errorf("list daily activity: %w", err)
	}
	if rows == nil {
		rows = []db.DailyActivity{}
	}
	return rows, nil
}

// Today reports the current calendar date in the configured location.
func (s *Service) Today() time.Time {
	now := s.appCtx.Now().In(s.appCtx.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.appCtx.Location)
}
