package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/gramps-gamification/internal/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func TestSeedTestData(t *testing.T) {
	gdb := openTestDB(t)
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	// seeding twice starts from a clean slate each time
	require.NoError(t, db.SeedTestData(gdb, now, time.UTC))
	require.NoError(t, db.SeedTestData(gdb, now, time.UTC))

	var balances []db.UserXP
	require.NoError(t, gdb.Find(&balances).Error)
	require.Len(t, balances, db.DemoUsers)

	for _, b := range balances {
		var sum int
		require.NoError(t, gdb.Model(&db.XPTransaction{}).
			Where("user_id = ?", b.UserID).
			Select("COALESCE(SUM(xp_amount), 0)").Scan(&sum).Error)
		assert.Equal(t, sum, b.TotalXP, b.UserID)

		var st db.UserStreak
		require.NoError(t, gdb.Where("user_id = ?", b.UserID).First(&st).Error)
		assert.LessOrEqual(t, st.CurrentStreak, st.LongestStreak)

		var days int64
		require.NoError(t, gdb.Model(&db.DailyActivity{}).Where("user_id = ?", b.UserID).Count(&days).Error)
		assert.Equal(t, int64(st.TotalMemories), days)
	}

	// first half of the users are always active today
	var st db.UserStreak
	require.NoError(t, gdb.Where("user_id = ?", db.DemoUserID(1)).First(&st).Error)
	require.NotNil(t, st.LastActivityDate)
	assert.Equal(t, "2024-06-15", *st.LastActivityDate)
	assert.GreaterOrEqual(t, st.CurrentStreak, 1)
}

func TestDemoUserID_Stable(t *testing.T) {
	assert.Equal(t, db.DemoUserID(3), db.DemoUserID(3))
	assert.NotEqual(t, db.DemoUserID(3), db.DemoUserID(4))
}
