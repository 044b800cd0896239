// Package level holds the fixed XP tier table and the pure functions that map
// a cumulative XP total onto it.
//
// Tier ranges are closed intervals: a tier covers MinXP..MaxXP inclusive and the
// next tier starts at MaxXP+1. Totals past the last tier stay on the last tier.
package level

// Color is the display colour attached to a tier.
type Color string

const (
	ColorGray    Color = "gray"
	ColorBlue    Color = "blue"
	ColorGreen   Color = "green"
	ColorPurple  Color = "purple"
	ColorOrange  Color = "orange"
	ColorRed     Color = "red"
	ColorYellow  Color = "yellow"
	ColorIndigo  Color = "indigo"
	ColorPink    Color = "pink"
	ColorGold    Color = "gold"
	ColorEmerald Color = "emerald"
	ColorViolet  Color = "violet"
	ColorRainbow Color = "rainbow"
)

// Info describes one tier of the level table.
type Info struct {
	Level       int    `json:"level"`
	MinXP       int    `json:"min_xp"`
	MaxXP       int    `json:"max_xp"`
	XPRequired  int    `json:"xp_required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       Color  `json:"color"`
	Icon        string `json:"icon"`
}

// Progress is the position of a total inside its tier.
type Progress struct {
	CurrentLevelXP     int     `json:"current_level_xp"`
	XPToNextLevel      int     `json:"xp_to_next_level"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// LevelUp is the outcome of comparing two totals.
type LevelUp struct {
	LeveledUp bool `json:"leveled_up"`
	OldLevel  Info `json:"old_level"`
	NewLevel  Info `json:"new_level"`
}

var table = [...]Info{
	{Level: 1, MinXP: 0, MaxXP: 49, XPRequired: 50, Title: "Memory Keeper", Description: "Just starting your journey", Color: ColorGray, Icon: "🌱"},
	{Level: 2, MinXP: 50, MaxXP: 119, XPRequired: 70, Title: "Story Teller", Description: "Learning to share memories", Color: ColorBlue, Icon: "📝"},
	{Level: 3, MinXP: 120, MaxXP: 219, XPRequired: 100, Title: "Memory Collector", Description: "Building your collection", Color: ColorGreen, Icon: "📚"},
	{Level: 4, MinXP: 220, MaxXP: 359, XPRequired: 140, Title: "Family Historian", Description: "Preserving family stories", Color: ColorPurple, Icon: "📖"},
	{Level: 5, MinXP: 360, MaxXP: 539, XPRequired: 180, Title: "Memory Master", Description: "Expert at capturing moments", Color: ColorOrange, Icon: "🎯"},
	{Level: 6, MinXP: 540, MaxXP: 759, XPRequired: 220, Title: "Legacy Builder", Description: "Creating lasting memories", Color: ColorRed, Icon: "🏗️"},
	{Level: 7, MinXP: 760, MaxXP: 1019, XPRequired: 260, Title: "Memory Champion", Description: "A true memory expert", Color: ColorYellow, Icon: "🥇"},
	{Level: 8, MinXP: 1020, MaxXP: 1319, XPRequired: 300, Title: "Family Guardian", Description: "Protector of family heritage", Color: ColorIndigo, Icon: "🛡️"},
	{Level: 9, MinXP: 1320, MaxXP: 1659, XPRequired: 340, Title: "Memory Legend", Description: "Legendary memory keeper", Color: ColorPink, Icon: "⭐"},
	{Level: 10, MinXP: 1660, MaxXP: 2039, XPRequired: 380, Title: "Grandmaster", Description: "The ultimate memory keeper", Color: ColorGold, Icon: "👑"},
	{Level: 11, MinXP: 2040, MaxXP: 2459, XPRequired: 420, Title: "Memory Sage", Description: "Wisdom keeper of memories", Color: ColorEmerald, Icon: "🧙‍♂️"},
	{Level: 12, MinXP: 2460, MaxXP: 2919, XPRequired: 460, Title: "Eternal Keeper", Description: "Guardian of timeless stories", Color: ColorViolet, Icon: "🌟"},
	{Level: 13, MinXP: 2920, MaxXP: 3419, XPRequired: 500, Title: "Memory Deity", Description: "Divine memory preserver", Color: ColorRainbow, Icon: "✨"},
}

// MaxLevel is the ceiling tier number.
const MaxLevel = len(table)

// Starting values written for a freshly initialized user.
const (
	InitialLevel         = 1
	InitialXPToNextLevel = 50
)

// All returns a copy of the level table in ascending order.
func All() []Info {
	out := make([]Info, len(table))
	copy(out, table[:])
	return out
}

// Calculate returns the tier containing totalXP. Negative totals map to the
// first tier and totals past the table map to the last one.
func Calculate(totalXP int) Info {
	for _, l := range table {
		if totalXP <= l.MaxXP {
			return l
		}
	}
	return table[len(table)-1]
}

// CalculateProgress reports how far totalXP is into the given tier.
func CalculateProgress(totalXP int, info Info) Progress {
	current := totalXP - info.MinXP
	pct := 0.0
	if info.XPRequired > 0 {
		pct = float64(current) / float64(info.XPRequired) * 100
	}
	return Progress{
		CurrentLevelXP:     current,
		XPToNextLevel:      info.XPRequired - current,
		ProgressPercentage: min(100, max(0, pct)),
	}
}

// Next returns the tier after currentLevel, or false at the ceiling or for an
// unknown level.
func Next(currentLevel int) (Info, bool) {
	if currentLevel < 1 {
		return Info{}, false
	}
	return Get(currentLevel + 1)
}

// Get looks up a tier by number.
func Get(lvl int) (Info, bool) {
	if lvl < 1 || lvl > MaxLevel {
		return Info{}, false
	}
	return table[lvl-1], true
}

// CheckLevelUp compares the tiers of two totals. XP never decreases, so only
// upward moves are reported.
func CheckLevelUp(oldXP, newXP int) LevelUp {
	oldLevel := Calculate(oldXP)
	newLevel := Calculate(newXP)
	return LevelUp{
		LeveledUp: newLevel.Level > oldLevel.Level,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
	}
}
