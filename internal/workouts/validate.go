package workouts

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateEntryInput trims both inputs and returns the exercise name and the
// duration in minutes. Missing values are reported before a bad duration.
func ValidateEntryInput(exercise, durationRaw string) (string, int, error) {
	exercise = strings.TrimSpace(exercise)
	durationRaw = strings.TrimSpace(durationRaw)

	if exercise == "" || durationRaw == "" {
		return "", 0, ErrMissingField
	}

	duration, err := strconv.Atoi(durationRaw)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidDuration, durationRaw)
	}
	if duration <= 0 {
		return "", 0, fmt.Errorf("%w: %d is not positive", ErrInvalidDuration, duration)
	}

	return exercise, duration, nil
}
