package level_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/gramps-gamification/internal/level"
)

func TestTableIsContiguous(t *testing.T) {
	tiers := level.All()
	require.Len(t, tiers, 13)
	assert.Equal(t, 0, tiers[0].MinXP)

	for i, tier := range tiers {
		assert.Equal(t, i+1, tier.Level)
		assert.Greater(t, tier.MaxXP, tier.MinXP)
		if i+1 < len(tiers) {
			assert.Equal(t, tier.MaxXP+1, tiers[i+1].MinXP, "gap after level %d", tier.Level)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	tiers := level.All()
	tiers[0].Title = "changed"
	assert.Equal(t, "Memory Keeper", level.All()[0].Title)
}

func TestCalculate_Boundaries(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{47, 1},
		{49, 1},
		{50, 2},
		{51, 2},
		{119, 2},
		{120, 3},
		{219, 3},
		{220, 4},
		{539, 5},
		{540, 6},
		{1019, 7},
		{1020, 8},
		{1659, 9},
		{1660, 10},
		{2039, 10},
		{2040, 11},
		{2919, 12},
		{2920, 13},
		{3419, 13},
		{3420, 13},
		{1_000_000, 13},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, level.Calculate(c.xp).Level, "xp=%d", c.xp)
	}
}

func TestCalculate_Consistency(t *testing.T) {
	last := level.All()[level.MaxLevel-1]
	for xp := 0; xp <= 4000; xp++ {
		info := level.Calculate(xp)
		assert.LessOrEqual(t, info.MinXP, xp)
		if info.Level != last.Level {
			assert.LessOrEqual(t, xp, info.MaxXP)
		}
	}
}

func TestCalculateProgress(t *testing.T) {
	p := level.CalculateProgress(47, level.Calculate(47))
	assert.Equal(t, 47, p.CurrentLevelXP)
	assert.Equal(t, 3, p.XPToNextLevel)
	assert.InDelta(t, 94.0, p.ProgressPercentage, 0.001)

	p = level.CalculateProgress(51, level.Calculate(51))
	assert.Equal(t, 1, p.CurrentLevelXP)
	assert.Equal(t, 69, p.XPToNextLevel)

	// past the ceiling the percentage is clamped
	p = level.CalculateProgress(10_000, level.Calculate(10_000))
	assert.Equal(t, 100.0, p.ProgressPercentage)
	assert.Negative(t, p.XPToNextLevel)

	// below a tier's floor is clamped to zero
	p = level.CalculateProgress(10, level.All()[1])
	assert.Equal(t, 0.0, p.ProgressPercentage)
}

func TestNext(t *testing.T) {
	next, ok := level.Next(1)
	require.True(t, ok)
	assert.Equal(t, 2, next.Level)
	assert.Equal(t, "Story Teller", next.Title)

	_, ok = level.Next(level.MaxLevel)
	assert.False(t, ok)

	_, ok = level.Next(0)
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	info, ok := level.Get(13)
	require.True(t, ok)
	assert.Equal(t, "Memory Deity", info.Title)

	_, ok = level.Get(14)
	assert.False(t, ok)
}

func TestCheckLevelUp(t *testing.T) {
	r := level.CheckLevelUp(45, 47)
	assert.False(t, r.LeveledUp)

	r = level.CheckLevelUp(47, 49)
	assert.False(t, r.LeveledUp)
	assert.Equal(t, 1, r.NewLevel.Level)

	r = level.CheckLevelUp(49, 51)
	assert.True(t, r.LeveledUp)
	assert.Equal(t, 1, r.OldLevel.Level)
	assert.Equal(t, 2, r.NewLevel.Level)
	assert.Equal(t, "Story Teller", r.NewLevel.Title)

	// skipping several tiers in one award
	r = level.CheckLevelUp(0, 600)
	assert.True(t, r.LeveledUp)
	assert.Equal(t, 6, r.NewLevel.Level)

	for xp := 0; xp < 3500; xp += 7 {
		assert.False(t, level.CheckLevelUp(xp, xp).LeveledUp)
	}

	// overflow past the ceiling never levels up
	assert.False(t, level.CheckLevelUp(3419, 9000).LeveledUp)
}

func TestBenefits(t *testing.T) {
	assert.Equal(t, []string{"📝 Learning to share your stories"}, level.Benefits(2))
	assert.Equal(t, []string{"🏆 Memory master"}, level.Benefits(99))
}

func TestMotivationalMessage(t *testing.T) {
	assert.Equal(t, "Every memory counts! Keep going! 🌱", level.MotivationalMessage(0, 10))
	assert.Equal(t, "Keep preserving those precious moments! 🎯", level.MotivationalMessage(1, 50))
	assert.Equal(t, "You're a true memory champion! ⭐", level.MotivationalMessage(5, 80))
	assert.Equal(t, "Congratulations! Level up! 🎉", level.MotivationalMessage(3, 100))

	// stable for the same input
	assert.Equal(t, level.MotivationalMessage(17, 20), level.MotivationalMessage(17, 20))
}

func TestFormatXP(t *testing.T) {
	assert.Equal(t, "0", level.FormatXP(0))
	assert.Equal(t, "999", level.FormatXP(999))
	assert.Equal(t, "12,345", level.FormatXP(12345))
	assert.Equal(t, "1,000,000", level.FormatXP(1_000_000))
}
