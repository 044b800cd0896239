package level

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var benefits = map[int][]string{
	1:  {"🌱 Just starting your memory journey"},
	2:  {"📝 Learning to share your stories"},
	3:  {"📚 Building your memory collection"},
	4:  {"📖 Becoming a family historian"},
	5:  {"🎯 Mastering memory capture"},
	6:  {"🏗️ Building lasting legacies"},
	7:  {"🥇 A true memory champion"},
	8:  {"🛡️ Guardian of family heritage"},
	9:  {"⭐ Legendary memory keeper"},
	10: {"👑 The ultimate memory keeper"},
	11: {"🧙‍♂️ Wise keeper of memories"},
	12: {"🌟 Guardian of timeless stories"},
	13: {"✨ Divine memory preserver"},
}

// Benefits lists the cosmetic perks of a level. Nothing is gated on them.
func Benefits(lvl int) []string {
	if b, ok := benefits[lvl]; ok {
		return append([]string(nil), b...)
	}
	return []string{"🏆 Memory master"}
}

var (
	earlyMessages = []string{
		"Every memory counts! Keep going! 🌱",
		"You're building something beautiful! 📝",
		"Each story matters! 📚",
	}
	midMessages = []string{
		"You're making great progress! 📖",
		"Keep preserving those precious moments! 🎯",
		"Your dedication is inspiring! 🏗️",
	}
	lateMessages = []string{
		"Almost there! You're doing amazing! 🥇",
		"The finish line is in sight! 🛡️",
		"You're a true memory champion! ⭐",
	}
	completeMessages = []string{
		"Congratulations! Level up! 🎉",
		"Amazing achievement! 🏆",
		"You're unstoppable! 👑",
	}
)

// MotivationalMessage picks an encouragement for the given progress band.
// The pick inside a band rotates with totalXP so the same state always yields
// the same text.
func MotivationalMessage(totalXP int, progressPercentage float64) string {
	var band []string
	switch {
	case progressPercentage >= 100:
		band = completeMessages
	case progressPercentage >= 75:
		band = lateMessages
	case progressPercentage >= 50:
		band = midMessages
	default:
		band = earlyMessages
	}
	if totalXP < 0 {
		totalXP = -totalXP
	}
	return band[totalXP%len(band)]
}

var printer = message.NewPrinter(language.English)

// FormatXP renders an XP amount with thousands separators, e.g. 12,345.
func FormatXP(xp int) string {
	return printer.Sprintf("%d", xp)
}
