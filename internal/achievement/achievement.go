// Package achievement defines the fixed achievement catalogue and evaluates it
// against a user's streak counters.
package achievement

// Metric is the streak counter an achievement is measured on.
type Metric string

const (
	MetricTotalMemories Metric = "total_memories"
	MetricCurrentStreak Metric = "current_streak"
)

// Definition is a catalogue entry.
type Definition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Metric      Metric `json:"metric"`
	Target      int    `json:"target"`
}

// Status is a definition evaluated for one user.
type Status struct {
	Definition
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"`
}

var catalogue = []Definition{
	{ID: "first_memory", Title: "First Memory Recorded", Description: "Record your very first memory", Icon: "🎉", Metric: MetricTotalMemories, Target: 1},
	{ID: "week_streak", Title: "7 Days in a Row", Description: "Record memories for 7 consecutive days", Icon: "🔥", Metric: MetricCurrentStreak, Target: 7},
	{ID: "month_streak", Title: "30 Days in a Row", Description: "Record memories for 30 consecutive days", Icon: "💪", Metric: MetricCurrentStreak, Target: 30},
	{ID: "hundred_memories", Title: "100 Memories Saved", Description: "Save 100 precious memories", Icon: "📚", Metric: MetricTotalMemories, Target: 100},
	{ID: "five_hundred_memories", Title: "500 Memories Saved", Description: "Save 500 precious memories", Icon: "🏆", Metric: MetricTotalMemories, Target: 500},
	{ID: "thousand_memories", Title: "1000 Memories Saved", Description: "Save 1000 precious memories", Icon: "👑", Metric: MetricTotalMemories, Target: 1000},
}

// Lookup finds a definition by id.
func Lookup(id string) (Definition, bool) {
	for _, d := range catalogue {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Evaluate scores the catalogue against the given counters.
func Evaluate(currentStreak, totalMemories int) []Status {
	out := make([]Status, 0, len(catalogue))
	for _, d := range catalogue {
		v := totalMemories
		if d.Metric == MetricCurrentStreak {
			v = currentStreak
		}
		out = append(out, Status{
			Definition: d,
			Unlocked:   v >= d.Target,
			Progress:   max(0, min(v, d.Target)),
		})
	}
	return out
}

// Unlocked filters Evaluate down to the definitions currently met.
func Unlocked(currentStreak, totalMemories int) []Definition {
	var out []Definition
	for _, s := range Evaluate(currentStreak, totalMemories) {
		if s.Unlocked {
			out = append(out, s.Definition)
		}
	}
	return out
}
