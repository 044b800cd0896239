package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/gramps-gamification/internal/level"
)

// DemoUsers is the number of users created by SeedTestData.
const DemoUsers = 10

// DemoUserID returns the stable id of the n-th demo user.
func DemoUserID(n int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "gramps-demo-user-%d", n)).String()
}

// SeedTestData resets the gamification tables and populates them with demo users.
//
// Behavior:
//  1. Clears user_xp, xp_transactions, user_streaks, daily_activities and user_achievements.
//  2. For each demo user, records random activity over the last 40 days in loc,
//     ending with a streak that is still alive (last active today or yesterday)
//     for most users.
//  3. Writes ledger entries for every recorded memory and a balance equal to
//     their sum, with level columns derived from the total.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB, now time.Time, loc *time.Location) error {
	r := rand.New(rand.NewSource(now.UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"user_achievements", "daily_activities", "user_streaks", "xp_transactions", "user_xp"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	today := now.In(loc)
	today = time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, loc)

	for n := 1; n <= DemoUsers; n++ {
		userID := DemoUserID(n)

		err := db.Transaction(func(tx *gorm.DB) error {
			streak := UserStreak{UserID: userID}
			total := 0

			for back := 40; back >= 0; back-- {
				// skip roughly one day in four, never today for the first half of users
				if r.Intn(4) == 0 && !(back == 0 && n <= DemoUsers/2) {
					continue
				}

				day := today.AddDate(0, 0, -back)
				date := day.Format(DateLayout)
				memories := r.Intn(3) + 1

				if err := tx.Create(&DailyActivity{UserID: userID, ActivityDate: date, MemoriesRecorded: memories}).Error; err != nil {
					return fmt.Errorf("failed to seed daily activity: %w", err)
				}

				yesterday := day.AddDate(0, 0, -1).Format(DateLayout)
				if streak.LastActivityDate != nil && *streak.LastActivityDate == yesterday {
					streak.CurrentStreak++
				} else {
					streak.CurrentStreak = 1
				}
				streak.LongestStreak = max(streak.LongestStreak, streak.CurrentStreak)
				streak.TotalMemories++
				d := date
				streak.LastActivityDate = &d

				for m := 0; m < memories; m++ {
					entry := XPTransaction{
						UserID:          userID,
						XPAmount:        2,
						TransactionType: TxMessageSent,
						Description:     "Sent a text message",
						CreatedAt:       day.Add(time.Duration(m) * time.Minute).UTC(),
					}
					if err := tx.Create(&entry).Error; err != nil {
						return fmt.Errorf("failed to seed transaction: %w", err)
					}
					total += entry.XPAmount
				}
			}

			// decay streaks whose last day is neither today nor yesterday
			if streak.LastActivityDate != nil {
				last := *streak.LastActivityDate
				if last != today.Format(DateLayout) && last != today.AddDate(0, 0, -1).Format(DateLayout) {
					streak.CurrentStreak = 0
				}
			}
			if err := tx.Create(&streak).Error; err != nil {
				return fmt.Errorf("failed to seed streak: %w", err)
			}

			info := level.Calculate(total)
			balance := UserXP{
				UserID:        userID,
				TotalXP:       total,
				CurrentLevel:  info.Level,
				XPToNextLevel: level.CalculateProgress(total, info).XPToNextLevel,
			}
			if err := tx.Create(&balance).Error; err != nil {
				return fmt.Errorf("failed to seed user xp: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo users.", DemoUsers)
	return nil
}
