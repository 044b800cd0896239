package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/gramps-gamification/internal/db"
)

// StreakRepository provides data access for user_streaks and daily_activities.
type StreakRepository struct {
	db *gorm.DB
}

// NewStreakRepository creates a new repository bound to the given DB connection.
func NewStreakRepository(database *gorm.DB) *StreakRepository {
	return &StreakRepository{db: database}
}

// Transaction runs fn with a repository bound to a single DB transaction.
// Any error returned by fn rolls everything back.
func (r *StreakRepository) Transaction(ctx context.Context, fn func(txRepo *StreakRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&StreakRepository{db: tx})
	})
}

// Get returns the streak row of a user, or nil when none exists yet.
func (r *StreakRepository) Get(ctx context.Context, userID string) (*db.UserStreak, error) {
	var s db.UserStreak
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetOrCreate returns the streak row of a user, inserting the zero state first
// when absent. With forUpdate the row is read under a row lock where the store
// supports it (mysql); sqlite serializes writers on its own.
func (r *StreakRepository) GetOrCreate(ctx context.Context, userID string, forUpdate bool) (*db.UserStreak, error) {
	seed := db.UserStreak{UserID: userID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&seed).Error; err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var s db.UserStreak
	if err := query.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes every column of the streak row.
func (r *StreakRepository) Save(ctx context.Context, s *db.UserStreak) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// InsertDailyActivity records the first activity of a user on a date.
//
// Behavior:
//   - (user_id, date) absent → row inserted with memories_recorded = 1; returns true.
//   - already present → nothing written; returns false.
//
// The unique index makes this the same-day dedup guard even under concurrent callers.
func (r *StreakRepository) InsertDailyActivity(ctx context.Context, userID, date string) (bool, error) {
	row := db.DailyActivity{UserID: userID, ActivityDate: date, MemoriesRecorded: 1}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "activity_date"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementDailyActivity bumps memories_recorded of an existing day row.
func (r *StreakRepository) IncrementDailyActivity(ctx context.Context, userID, date string) error {
	return r.db.WithContext(ctx).
		Model(&db.DailyActivity{}).
		Where("user_id = ? AND activity_date = ?", userID, date).
		Update("memories_recorded", gorm.Expr("memories_recorded + 1")).Error
}

// HasDailyActivity reports whether a day row exists.
func (r *StreakRepository) HasDailyActivity(ctx context.Context, userID, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.DailyActivity{}).
		Where("user_id = ? AND activity_date = ?", userID, date).
		Count(&count).Error
	return count > 0, err
}

// ListDailyActivity returns day rows with from <= date <= to, oldest first.
// Dates are YYYY-MM-DD strings, so lexical order is calendar order.
func (r *StreakRepository) ListDailyActivity(ctx context.Context, userID, from, to string) ([]db.DailyActivity, error) {
	var rows []db.DailyActivity
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_date >= ? AND activity_date <= ?", userID, from, to).
		Order("activity_date ASC").
		Find(&rows).Error
	return rows, err
}

// ResetIfInactive zeroes current_streak when the last active date is neither
// today nor yesterday. longest_streak and total_memories are not touched.
// Returns true when a row changed.
func (r *StreakRepository) ResetIfInactive(ctx context.Context, userID, today, yesterday string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.UserStreak{}).
		Where("user_id = ?", userID).
		Where("last_activity_date IS NOT NULL AND last_activity_date NOT IN ?", []string{today, yesterday}).
		Where("current_streak <> 0").
		Update("current_streak", 0)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
