package workouts

import "time"

const DateLayout = "2006-01-02"

type Entry struct {
	ID        int       `json:"id"`
	Exercise  string    `json:"exercise"`
	Duration  int       `json:"duration"`
	Category  Category  `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	// Calories is nil when no body weight was known at insert time.
	Calories *float64 `json:"calories,omitempty"`
}

// Date is the DailyLedger key of the entry.
func (e Entry) Date() string {
	return e.Timestamp.Format(DateLayout)
}

type CategoryTotals struct {
	Count        int `json:"count"`
	TotalMinutes int `json:"total_minutes"`
}

type Totals struct {
	TotalMinutes  int                         `json:"total_minutes"`
	TotalEntries  int                         `json:"total_entries"`
	TotalCalories float64                     `json:"total_calories"`
	PerCategory   map[Category]CategoryTotals `json:"per_category"`
}

// computeTotals always reports the known categories, empty or not.
func computeTotals(buckets map[Category][]Entry) Totals {
	totals := Totals{
		PerCategory: make(map[Category]CategoryTotals, len(buckets)+len(KnownCategories)),
	}
	for _, c := range KnownCategories {
		totals.PerCategory[c] = CategoryTotals{}
	}

	for c, entries := range buckets {
		ct := totals.PerCategory[c]
		for _, e := range entries {
			ct.Count++
			ct.TotalMinutes += e.Duration
			if e.Calories != nil {
				totals.TotalCalories += *e.Calories
			}
		}
		totals.PerCategory[c] = ct
		totals.TotalEntries += ct.Count
		totals.TotalMinutes += ct.TotalMinutes
	}

	return totals
}
