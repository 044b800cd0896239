// Package topics serves the conversation starters shown to the user. Four
// question sets cover the same eight categories and rotate by day of year.
package topics

import "time"

// Topic is one conversation category with its prompts.
type Topic struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Prompts     []string `json:"prompts"`
}

// SetCount is the number of rotating question sets.
const SetCount = len(questionSets)

// SetNumber returns the 1-based question set used on the given day.
// Jan 1 is day 1, so it maps to set 2.
func SetNumber(day time.Time) int {
	return day.YearDay()%SetCount + 1
}

// ForDate returns the topics of the day in t's own location.
func ForDate(t time.Time) []Topic {
	return copyTopics(questionSets[SetNumber(t)-1])
}

// Set returns the topics of a 1-based set number, or false when out of range.
func Set(n int) ([]Topic, bool) {
	if n < 1 || n > SetCount {
		return nil, false
	}
	return copyTopics(questionSets[n-1]), true
}

func copyTopics(in []Topic) []Topic {
	out := make([]Topic, len(in))
	for i, t := range in {
		t.Prompts = append([]string(nil), t.Prompts...)
		out[i] = t
	}
	return out
}
