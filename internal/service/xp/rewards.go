package xp

// Fixed XP rewards per activity.
const (
	MessageSentXP        = 2
	BlogPostCreatedXP    = 10
	AchievementXP        = 100
	FamilyShareXP        = 50 // per recipient
	VoiceRecordingXP     = 75
	LongVoiceBonusXP     = 25
	LongVoiceThresholdS  = 60
	StreakMaintenanceXP  = 100 // every 50 days past 100
	streakMaintenanceDiv = 50
)

// streakMilestones maps exact streak lengths to their bonus.
var streakMilestones = map[int]int{
	1:   25,
	3:   50,
	7:   100,
	14:  150,
	30:  250,
	100: 500,
}

// MessageXP is the reward for one sent message, text or voice.
func MessageXP() int { return MessageSentXP }

// BlogXP is the reward for one created blog post.
func BlogXP() int { return BlogPostCreatedXP }

// StreakXP is the bonus for reaching a streak length. Lengths between
// milestones earn nothing.
func StreakXP(streakCount int) int {
	if v, ok := streakMilestones[streakCount]; ok {
		return v
	}
	if streakCount > 100 && streakCount%streakMaintenanceDiv == 0 {
		return StreakMaintenanceXP
	}
	return 0
}

// FamilyShareRewardXP is the reward for sharing with recipientCount family members.
func FamilyShareRewardXP(recipientCount int) int {
	if recipientCount <= 0 {
		return 0
	}
	return FamilyShareXP * recipientCount
}

// VoiceXP is the reward for a voice recording; recordings over a minute get a bonus.
// A zero duration means unknown.
func VoiceXP(durationSeconds float64) int {
	if IsLongRecording(durationSeconds) {
		return VoiceRecordingXP + LongVoiceBonusXP
	}
	return VoiceRecordingXP
}

// IsLongRecording reports whether a recording earns the length bonus.
func IsLongRecording(durationSeconds float64) bool {
	return durationSeconds > LongVoiceThresholdS
}
