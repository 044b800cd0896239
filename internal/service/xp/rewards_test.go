package xp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oggyb/gramps-gamification/internal/service/xp"
)

func TestStreakXP(t *testing.T) {
	cases := map[int]int{
		0:   0,
		1:   25,
		2:   0,
		3:   50,
		4:   0,
		6:   0,
		7:   100,
		8:   0,
		13:  0,
		14:  150,
		30:  250,
		50:  0,
		99:  0,
		100: 500,
		101: 0,
		150: 100,
		151: 0,
		200: 100,
		250: 100,
	}
	for streak, want := range cases {
		assert.Equal(t, want, xp.StreakXP(streak), "streak=%d", streak)
	}
}

func TestConstantRewards(t *testing.T) {
	assert.Equal(t, 2, xp.MessageXP())
	assert.Equal(t, 10, xp.BlogXP())
}

func TestFamilyShareRewardXP(t *testing.T) {
	assert.Equal(t, 0, xp.FamilyShareRewardXP(0))
	assert.Equal(t, 0, xp.FamilyShareRewardXP(-2))
	assert.Equal(t, 50, xp.FamilyShareRewardXP(1))
	assert.Equal(t, 150, xp.FamilyShareRewardXP(3))
}

func TestVoiceXP(t *testing.T) {
	assert.Equal(t, 75, xp.VoiceXP(0))
	assert.Equal(t, 75, xp.VoiceXP(60))
	assert.Equal(t, 100, xp.VoiceXP(60.5))
	assert.Equal(t, 100, xp.VoiceXP(300))
}
