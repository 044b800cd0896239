package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/gramps-gamification/internal/db"
)

// AchievementRepository records which achievements a user has been paid for.
type AchievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new repository bound to the given DB connection.
func NewAchievementRepository(database *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: database}
}

// Unlock marks an achievement as unlocked. Returns true only for the first
// call per (user, achievement); later calls are no-ops.
func (r *AchievementRepository) Unlock(ctx context.Context, userID, achievementID string) (bool, error) {
	row := db.UserAchievement{UserID: userID, AchievementID: achievementID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByUser returns unlocked achievements, oldest first.
func (r *AchievementRepository) ListByUser(ctx context.Context, userID string) ([]db.UserAchievement, error) {
	var rows []db.UserAchievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
