package pet

// Achievement is one unlockable badge shown by the cat widget.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Achievements evaluates every badge against the stats and the wallet's mfer
// count. Thresholds follow the cat widget's rules.
func Achievements(stats Stats, mferCount int) []Achievement {
	return []Achievement{
		{
			ID:          "first-post",
			Title:       "First Meow",
			Description: "Post once",
			Unlocked:    stats.TotalPosts >= 1,
		},
		{
			ID:          "mfer-friend",
			Title:       "Mfer Friend",
			Description: "Own 1 mfer",
			Unlocked:    mferCount >= 1,
		},
		{
			ID:          "mfer-collector",
			Title:       "Mfer Collector",
			Description: "Own 5+ mfers",
			Unlocked:    mferCount >= 5,
		},
		{
			ID:          "daily-poster",
			Title:       "Daily Poster",
			Description: "Post for 7 days",
			Unlocked:    stats.DaysActive >= 7,
		},
		{
			ID:          "cat-lover",
			Title:       "Cat Lover",
			Description: "10 cat interactions",
			Unlocked:    stats.CatInteractions >= 10,
		},
		{
			ID:          "consistent-mfer",
			Title:       "Consistent Mfer",
			Description: "Post for 30 days",
			Unlocked:    stats.DaysActive >= 30,
		},
		{
			ID:          "cat-whisperer",
			Title:       "Cat Whisperer",
			Description: "Keep a 7 day streak",
			Unlocked:    stats.ConsecutiveDays >= 7,
		},
	}
}
