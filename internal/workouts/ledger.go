package workouts

import (
	"context"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type AddParams struct {
	Category string
	Exercise string
	// Duration is the raw user input, validated by Add.
	Duration string
	// WeightKg enables the calorie estimate when set.
	WeightKg *float64
}

// Ledger keeps every workout entry in memory, bucketed by category, and a
// per-day view of the same entries. All methods are safe for concurrent use.
type Ledger struct {
	mutex sync.RWMutex

	policy  CategoryPolicy
	now     func() time.Time
	lastID  int
	version uint64

	entries map[Category][]Entry
	// date (2006-01-02) -> category -> entries
	daily map[string]map[Category][]Entry
}

type LedgerOption func(*Ledger)

// WithClock overrides the time source used to stamp new entries.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

func NewLedger(policy CategoryPolicy, opts ...LedgerOption) *Ledger {
	if policy == "" {
		policy = PolicyCoerce
	}
	l := &Ledger{
		policy:  policy,
		now:     time.Now,
		entries: newBuckets(),
		daily:   make(map[string]map[Category][]Entry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func newBuckets() map[Category][]Entry {
	buckets := make(map[Category][]Entry, len(KnownCategories))
	for _, c := range KnownCategories {
		buckets[c] = []Entry{}
	}
	return buckets
}

// Now reads the clock that stamps new entries.
func (l *Ledger) Now() time.Time {
	return l.now()
}

func (l *Ledger) Policy() CategoryPolicy {
	return l.policy
}

// Add validates the input and stores a new entry. Nothing is stored when an
// error is returned.
func (l *Ledger) Add(ctx context.Context, params AddParams) (_ *Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "ledger.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, duration, err := ValidateEntryInput(params.Exercise, params.Duration)
	if err != nil {
		return nil, err
	}
	category, err := l.policy.Resolve(params.Category)
	if err != nil {
		return nil, err
	}

	var calories *float64
	if params.WeightKg != nil {
		kcal := CaloriesFromMET(METFor(category), *params.WeightKg, duration)
		// an estimate that overflows is left out, totals stay encodable
		if !math.IsNaN(kcal) && !math.IsInf(kcal, 0) {
			calories = &kcal
		}
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.lastID++
	entry := Entry{
		ID:        l.lastID,
		Exercise:  exercise,
		Duration:  duration,
		Category:  category,
		Timestamp: l.now(),
		Calories:  calories,
	}

	l.entries[category] = append(l.entries[category], entry)

	day := entry.Date()
	if _, ok := l.daily[day]; !ok {
		l.daily[day] = newBuckets()
	}
	l.daily[day][category] = append(l.daily[day][category], entry)
	l.version++

	span.SetAttributes(
		attribute.Int("entry.id", entry.ID),
		attribute.String("entry.category", string(category)),
	)

	return &entry, nil
}

// Delete removes the entry with id from category, also from its day bucket.
// It reports whether something was removed; unknown targets are not an error.
func (l *Ledger) Delete(ctx context.Context, category Category, id int) bool {
	_, span := tracing.GlobalTracer.Start(ctx, "ledger.workouts.delete")
	defer span.End()

	// resolved the same way Add stores it, so a coerced entry is found under
	// the category it was submitted with
	category, err := l.policy.Resolve(string(category))
	if err != nil {
		return false
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	bucket, ok := l.entries[category]
	if !ok {
		return false
	}
	idx := slices.IndexFunc(bucket, func(e Entry) bool { return e.ID == id })
	if idx < 0 {
		return false
	}

	removed := bucket[idx]
	l.entries[category] = slices.Delete(bucket, idx, idx+1)

	if dayBuckets, ok := l.daily[removed.Date()]; ok {
		dayBuckets[category] = slices.DeleteFunc(dayBuckets[category], func(e Entry) bool {
			return e.ID == id
		})
	}
	l.version++

	span.SetAttributes(attribute.Int("entry.id", id))
	return true
}

func (l *Ledger) Totals(ctx context.Context) Totals {
	_, span := tracing.GlobalTracer.Start(ctx, "ledger.workouts.totals")
	defer span.End()

	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return computeTotals(l.entries)
}

// Entries returns a copy of the lifetime ledger.
func (l *Ledger) Entries(ctx context.Context) map[Category][]Entry {
	_, span := tracing.GlobalTracer.Start(ctx, "ledger.workouts.entries")
	defer span.End()

	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return copyBuckets(l.entries)
}

// Day returns a copy of the entries logged on the given calendar day.
// Known categories are always present, empty when nothing was logged.
func (l *Ledger) Day(ctx context.Context, day time.Time) map[Category][]Entry {
	_, span := tracing.GlobalTracer.Start(ctx, "ledger.workouts.day")
	defer span.End()

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	buckets, ok := l.daily[day.Format(DateLayout)]
	if !ok {
		return newBuckets()
	}
	return copyBuckets(buckets)
}

func (l *Ledger) DayTotals(ctx context.Context, day time.Time) Totals {
	_, span := tracing.GlobalTracer.Start(ctx, "ledger.workouts.day-totals")
	defer span.End()

	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return computeTotals(l.daily[day.Format(DateLayout)])
}

// CaloriesBetween sums the calories of all days in [from, to], both inclusive.
func (l *Ledger) CaloriesBetween(ctx context.Context, from, to time.Time) float64 {
	_, span := tracing.GlobalTracer.Start(ctx, "ledger.workouts.calories-between")
	defer span.End()

	fromKey, toKey := from.Format(DateLayout), to.Format(DateLayout)

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var sum float64
	for day, buckets := range l.daily {
		// ISO dates order lexicographically
		if day < fromKey || day > toKey {
			continue
		}
		sum += computeTotals(buckets).TotalCalories
	}
	return sum
}

// Count is the number of entries currently stored.
func (l *Ledger) Count() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	count := 0
	for _, bucket := range l.entries {
		count += len(bucket)
	}
	return count
}

// Version changes on every successful mutation.
func (l *Ledger) Version() uint64 {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.version
}

func copyBuckets(src map[Category][]Entry) map[Category][]Entry {
	dst := make(map[Category][]Entry, len(src))
	for c, entries := range src {
		cp := make([]Entry, len(entries))
		for i, e := range entries {
			cp[i] = e
			if e.Calories != nil {
				kcal := *e.Calories
				cp[i].Calories = &kcal
			}
		}
		dst[c] = cp
	}
	return dst
}
