package db

import (
	"time"
)

// TransactionType classifies an XP grant.
type TransactionType string

const (
	TxMessageSent    TransactionType = "message_sent"
	TxBlogCreated    TransactionType = "blog_created"
	TxStreakBonus    TransactionType = "streak_bonus"
	TxAchievement    TransactionType = "achievement"
	TxFamilyShare    TransactionType = "family_share"
	TxVoiceRecording TransactionType = "voice_recording"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TxMessageSent, TxBlogCreated, TxStreakBonus, TxAchievement, TxFamilyShare, TxVoiceRecording:
		return true
	}
	return false
}

// DateLayout is the calendar-date format stored in date columns.
const DateLayout = "2006-01-02"

// UserXP is the cumulative XP balance of one user.
//
// One row per user (unique user_id), created lazily on first award.
// CurrentLevel and XPToNextLevel are derived from TotalXP on every write.
type UserXP struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	TotalXP       int       `gorm:"not null;default:0" json:"total_xp"`
	CurrentLevel  int       `gorm:"not null;default:1" json:"current_level"`
	XPToNextLevel int       `gorm:"not null;default:50" json:"xp_to_next_level"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserXP) TableName() string { return "user_xp" }

// XPTransaction is one append-only ledger entry.
//
// Indexes:
//   - idx_xp_tx_user_id(user_id, id DESC)
//     Serves newest-first listing per user.
type XPTransaction struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement;index:idx_xp_tx_user_id,priority:2,sort:desc" json:"id"`
	UserID          string          `gorm:"size:64;not null;index:idx_xp_tx_user_id,priority:1" json:"user_id"`
	XPAmount        int             `gorm:"not null" json:"xp_amount"`
	TransactionType TransactionType `gorm:"size:32;not null" json:"transaction_type"`
	Description     string          `gorm:"size:255" json:"description"`
	MemoryID        *string         `gorm:"size:64" json:"memory_id,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (XPTransaction) TableName() string { return "xp_transactions" }

// UserStreak tracks consecutive active calendar days for one user.
// LongestStreak >= CurrentStreak after every write.
type UserStreak struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           string    `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	CurrentStreak    int       `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak    int       `gorm:"not null;default:0" json:"longest_streak"`
	LastActivityDate *string   `gorm:"size:10" json:"last_activity_date"`
	TotalMemories    int       `gorm:"not null;default:0" json:"total_memories"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserStreak) TableName() string { return "user_streaks" }

// DailyActivity is the per-user, per-day dedup row for streak bookkeeping.
//
// Unique (user_id, activity_date): the first qualifying event of a day inserts
// it, later events of the same day only bump MemoriesRecorded.
type DailyActivity struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID           string    `gorm:"size:64;not null;uniqueIndex:idx_daily_user_date,priority:1" json:"user_id"`
	ActivityDate     string    `gorm:"size:10;not null;uniqueIndex:idx_daily_user_date,priority:2" json:"activity_date"`
	MemoriesRecorded int       `gorm:"not null;default:1" json:"memories_recorded"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyActivity) TableName() string { return "daily_activities" }

// UserAchievement records that an achievement was unlocked (and paid) once.
type UserAchievement struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID        string    `gorm:"size:64;not null;uniqueIndex:idx_user_achievement,priority:1" json:"user_id"`
	AchievementID string    `gorm:"size:64;not null;uniqueIndex:idx_user_achievement,priority:2" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"autoCreateTime" json:"unlocked_at"`
}

func (UserAchievement) TableName() string { return "user_achievements" }

// Models lists every table for auto-migration.
func Models() []any {
	return []any{&UserXP{}, &XPTransaction{}, &UserStreak{}, &DailyActivity{}, &UserAchievement{}}
}
