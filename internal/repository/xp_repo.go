package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/gramps-gamification/internal/db"
)

// DeriveFunc computes the derived level columns for a total.
type DeriveFunc func(totalXP int) (currentLevel, xpToNextLevel int)

// XPRepository provides data access for the per-user XP balance (user_xp).
type XPRepository struct {
	db *gorm.DB
}

// NewXPRepository creates a new repository bound to the given DB connection.
func NewXPRepository(database *gorm.DB) *XPRepository {
	return &XPRepository{db: database}
}

// Get returns the balance row of a user, or nil when none exists yet.
func (r *XPRepository) Get(ctx context.Context, userID string) (*db.UserXP, error) {
	var row db.UserXP
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Initialize creates the zero-state row if absent.
//
// Behavior:
//   - Missing row → inserted with total 0 and the given derived columns; returns true.
//   - Existing row → left untouched; returns false.
func (r *XPRepository) Initialize(ctx context.Context, userID string, currentLevel, xpToNext int) (bool, error) {
	row := db.UserXP{
		UserID:        userID,
		TotalXP:       0,
		CurrentLevel:  currentLevel,
		XPToNextLevel: xpToNext,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddXP atomically adds delta to a user's total and refreshes the derived columns.
//
// Behavior (single transaction):
//  1. Create-if-absent of the user's row.
//  2. total_xp = total_xp + delta, pushed down to the store so concurrent
//     awards for the same user never overwrite each other.
//  3. Read back, derive level columns, write them.
//
// Returns the row after the update.
//
// Example:
//
//	row, err := repo.AddXP(ctx, "u-1", 2, derive) // row.TotalXP == previous + 2
func (r *XPRepository) AddXP(ctx context.Context, userID string, delta int, derive DeriveFunc) (*db.UserXP, error) {
	var out db.UserXP
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lvl, next := derive(0)
		seed := db.UserXP{UserID: userID, CurrentLevel: lvl, XPToNextLevel: next}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		if err := tx.Model(&db.UserXP{}).
			Where("user_id = ?", userID).
			Update("total_xp", gorm.Expr("total_xp + ?", delta)).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).First(&out).Error; err != nil {
			return err
		}

		lvl, next = derive(out.TotalXP)
		if err := tx.Model(&db.UserXP{}).
			Where("id = ?", out.ID).
			Updates(map[string]any{
				"current_level":    lvl,
				"xp_to_next_level": next,
			}).Error; err != nil {
			return err
		}
		out.CurrentLevel = lvl
		out.XPToNextLevel = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
