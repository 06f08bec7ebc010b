package workouts

import "errors"

var (
	ErrMissingField    = errors.New("missing field")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrUnknownCategory = errors.New("unknown category")
)

// UserMessage returns the text shown to the user for a rejected entry.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "Please enter both exercise and duration."
	case errors.Is(err, ErrInvalidDuration):
		return "Duration must be a positive whole number."
	case errors.Is(err, ErrUnknownCategory):
		return "Unknown workout category."
	default:
		return "Failed to add workout."
	}
}

// rejectReason is the metrics label for a validation failure.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidDuration):
		return "invalid_duration"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	default:
		return "other"
	}
}
