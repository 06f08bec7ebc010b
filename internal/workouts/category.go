package workouts

import (
	"fmt"
	"sort"
	"strings"
)

type Category string

const (
	CategoryWarmUp   Category = "Warm-up"
	CategoryWorkout  Category = "Workout"
	CategoryCoolDown Category = "Cool-down"

	DefaultCategory = CategoryWorkout
)

// KnownCategories in display order.
var KnownCategories = []Category{CategoryWarmUp, CategoryWorkout, CategoryCoolDown}

func (c Category) Known() bool {
	for _, k := range KnownCategories {
		if c == k {
			return true
		}
	}
	return false
}

// CategoryPolicy decides what happens with a category outside KnownCategories.
type CategoryPolicy string

const (
	// PolicyCoerce files unknown categories under DefaultCategory.
	PolicyCoerce CategoryPolicy = "coerce"
	// PolicyAccept gives an unknown category its own bucket.
	PolicyAccept CategoryPolicy = "accept"
	// PolicyReject fails the add with ErrUnknownCategory.
	PolicyReject CategoryPolicy = "reject"
)

func ParseCategoryPolicy(s string) (CategoryPolicy, error) {
	switch p := CategoryPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyCoerce, nil
	case PolicyCoerce, PolicyAccept, PolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown category policy [%s]", s)
	}
}

// Resolve maps raw user input to the category the entry is stored under.
// A blank category always means DefaultCategory.
func (p CategoryPolicy) Resolve(raw string) (Category, error) {
	c := Category(strings.TrimSpace(raw))
	if c == "" {
		return DefaultCategory, nil
	}
	if c.Known() {
		return c, nil
	}

	switch p {
	case PolicyAccept:
		return c, nil
	case PolicyReject:
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	default:
		return DefaultCategory, nil
	}
}

// OrderedCategories returns the known categories first, in display order,
// followed by any other categories present in m, sorted by name.
func OrderedCategories[V any](m map[Category]V) []Category {
	ordered := make([]Category, 0, len(m))
	for _, c := range KnownCategories {
		if _, ok := m[c]; ok {
			ordered = append(ordered, c)
		}
	}

	var extra []Category
	for c := range m {
		if !c.Known() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(ordered, extra...)
}
