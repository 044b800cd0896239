package streak

import "fmt"

// Message is the encouragement shown for a current streak.
func Message(current int) string {
	switch {
	case current <= 0:
		return "Start your memory journey today!"
	case current == 1:
		return "Great start! Keep it going!"
	case current < 7:
		return fmt.Sprintf("%d days in a row! You're building momentum!", current)
	case current < 30:
		return fmt.Sprintf("%d days in a row! Amazing dedication!", current)
	default:
		return fmt.Sprintf("%d days in a row! You're a memory champion!", current)
	}
}

// Emoji is the badge shown for a current streak.
func Emoji(current int) string {
	switch {
	case current <= 0:
		return "🌱"
	case current < 7:
		return "🔥"
	case current < 30:
		return "💪"
	default:
		return "👑"
	}
}
