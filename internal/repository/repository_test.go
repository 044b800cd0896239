package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/repository"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

func derive(total int) (int, int) {
	// simple stand-in: a level every 100 XP
	return total/100 + 1, 100 - total%100
}

func TestXPRepository_GetMissing(t *testing.T) {
	repo := repository.NewXPRepository(setupTestDB(t))

	row, err := repo.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestXPRepository_Initialize(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewXPRepository(setupTestDB(t))

	created, err := repo.Initialize(ctx, "u1", 1, 50)
	require.NoError(t, err)
	assert.True(t, created)

	_, err = repo.AddXP(ctx, "u1", 30, derive)
	require.NoError(t, err)

	// second initialize is a no-op and keeps the balance
	created, err = repo.Initialize(ctx, "u1", 1, 50)
	require.NoError(t, err)
	assert.False(t, created)

	row, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 30, row.TotalXP)
}

func TestXPRepository_AddXP(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewXPRepository(setupTestDB(t))

	row, err := repo.AddXP(ctx, "u1", 75, derive)
	require.NoError(t, err)
	assert.Equal(t, 75, row.TotalXP)
	assert.Equal(t, 1, row.CurrentLevel)
	assert.Equal(t, 25, row.XPToNextLevel)

	row, err = repo.AddXP(ctx, "u1", 50, derive)
	require.NoError(t, err)
	assert.Equal(t, 125, row.TotalXP)
	assert.Equal(t, 2, row.CurrentLevel)
	assert.Equal(t, 75, row.XPToNextLevel)

	stored, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 125, stored.TotalXP)
	assert.Equal(t, 2, stored.CurrentLevel)
	assert.Equal(t, 75, stored.XPToNextLevel)
}

func TestXPRepository_AddXPConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewXPRepository(setupTestDB(t))

	const workers = 20
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := repo.AddXP(ctx, "u1", 2, derive)
			errs <- err
		}()
	}
	for i := 0; i < workers; i++ {
		require.NoError(t, <-errs)
	}

	row, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, workers*2, row.TotalXP)
}

func TestTransactionRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTransactionRepository(setupTestDB(t))

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(ctx, &db.XPTransaction{
			UserID:          "u1",
			XPAmount:        i,
			TransactionType: db.TxMessageSent,
			Description:     fmt.Sprintf("entry %d", i),
		}))
	}
	require.NoError(t, repo.Create(ctx, &db.XPTransaction{UserID: "u2", XPAmount: 99, TransactionType: db.TxAchievement}))

	rows, next, err := repo.ListByUser(ctx, "u1", "", 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.NotNil(t, next)
	assert.Equal(t, []int{5, 4, 3}, amounts(rows))

	rows, next, err = repo.ListByUser(ctx, "u1", *next, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, amounts(rows))
	assert.Nil(t, next)

	count, err := repo.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	sum, err := repo.SumByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 15, sum)
}

// TestTransactionRepository_PagesSubMillisecondRows pages through entries
// written within one millisecond. SQLite keeps the full timestamp precision.
func TestTransactionRepository_PagesSubMillisecondRows(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTransactionRepository(setupTestDB(t))
	base := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Create(ctx, &db.XPTransaction{
			UserID:          "u1",
			XPAmount:        i,
			TransactionType: db.TxMessageSent,
			CreatedAt:       base.Add(time.Duration(i) * 100 * time.Microsecond),
		}))
	}

	var seen []int
	token := ""
	for {
		rows, next, err := repo.ListByUser(ctx, "u1", token, 2)
		require.NoError(t, err)
		seen = append(seen, amounts(rows)...)
		if next == nil {
			break
		}
		token = *next
	}
	assert.Equal(t, []int{4, 3, 2, 1}, seen)
}

func TestTransactionRepository_InvalidToken(t *testing.T) {
	repo := repository.NewTransactionRepository(setupTestDB(t))
	_, _, err := repo.ListByUser(context.Background(), "u1", "garbage!", 3)
	assert.Error(t, err)
}

func TestTransactionRepository_KeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTransactionRepository(setupTestDB(t))

	at := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &db.XPTransaction{UserID: "u1", XPAmount: 2, TransactionType: db.TxMessageSent, CreatedAt: at}))

	rows, _, err := repo.ListByUser(ctx, "u1", "", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, at.Equal(rows[0].CreatedAt))
}

func amounts(rows []db.XPTransaction) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.XPAmount)
	}
	return out
}

func TestStreakRepository_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStreakRepository(setupTestDB(t))

	missing, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	s, err := repo.GetOrCreate(ctx, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 0, s.LongestStreak)
	assert.Nil(t, s.LastActivityDate)

	again, err := repo.GetOrCreate(ctx, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)
}

func TestStreakRepository_DailyActivityDedup(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStreakRepository(setupTestDB(t))

	inserted, err := repo.InsertDailyActivity(ctx, "u1", "2024-01-06")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertDailyActivity(ctx, "u1", "2024-01-06")
	require.NoError(t, err)
	assert.False(t, inserted)

	require.NoError(t, repo.IncrementDailyActivity(ctx, "u1", "2024-01-06"))

	has, err := repo.HasDailyActivity(ctx, "u1", "2024-01-06")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasDailyActivity(ctx, "u1", "2024-01-07")
	require.NoError(t, err)
	assert.False(t, has)

	_, err = repo.InsertDailyActivity(ctx, "u1", "2024-01-08")
	require.NoError(t, err)
	_, err = repo.InsertDailyActivity(ctx, "u2", "2024-01-06")
	require.NoError(t, err)

	rows, err := repo.ListDailyActivity(ctx, "u1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-06", rows[0].ActivityDate)
	assert.Equal(t, 2, rows[0].MemoriesRecorded)
	assert.Equal(t, "2024-01-08", rows[1].ActivityDate)
	assert.Equal(t, 1, rows[1].MemoriesRecorded)
}

func TestStreakRepository_TransactionRollback(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStreakRepository(setupTestDB(t))

	boom := fmt.Errorf("boom")
	err := repo.Transaction(ctx, func(tx *repository.StreakRepository) error {
		if _, err := tx.InsertDailyActivity(ctx, "u1", "2024-01-06"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	has, err := repo.HasDailyActivity(ctx, "u1", "2024-01-06")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStreakRepository_ResetIfInactive(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStreakRepository(setupTestDB(t))

	seed := func(userID, last string, current int) {
		s, err := repo.GetOrCreate(ctx, userID, false)
		require.NoError(t, err)
		s.CurrentStreak = current
		s.LongestStreak = 10
		s.TotalMemories = 12
		s.LastActivityDate = &last
		require.NoError(t, repo.Save(ctx, s))
	}
	seed("stale", "2024-01-03", 4)
	seed("yesterday", "2024-01-05", 4)
	seed("today", "2024-01-06", 4)

	changed, err := repo.ResetIfInactive(ctx, "stale", "2024-01-06", "2024-01-05")
	require.NoError(t, err)
	assert.True(t, changed)

	s, err := repo.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 10, s.LongestStreak)
	assert.Equal(t, 12, s.TotalMemories)

	for _, id := range []string{"yesterday", "today"} {
		changed, err = repo.ResetIfInactive(ctx, id, "2024-01-06", "2024-01-05")
		require.NoError(t, err)
		assert.False(t, changed, id)
	}

	// already zero → nothing to change
	changed, err = repo.ResetIfInactive(ctx, "stale", "2024-01-06", "2024-01-05")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAchievementRepository_UnlockOnce(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAchievementRepository(setupTestDB(t))

	first, err := repo.Unlock(ctx, "u1", "first_memory")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repo.Unlock(ctx, "u1", "first_memory")
	require.NoError(t, err)
	assert.False(t, again)

	_, err = repo.Unlock(ctx, "u1", "week_streak")
	require.NoError(t, err)

	rows, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "first_memory", rows[0].AchievementID)
}
