package workouts

type Motivation string

const (
	MotivationLow    Motivation = "LOW"
	MotivationMedium Motivation = "MEDIUM"
	MotivationHigh   Motivation = "HIGH"
)

func ClassifyMotivation(totalMinutes int) Motivation {
	switch {
	case totalMinutes < 30:
		return MotivationLow
	case totalMinutes < 60:
		return MotivationMedium
	default:
		return MotivationHigh
	}
}

func (m Motivation) Message() string {
	switch m {
	case MotivationLow:
		return "Good start! Keep moving"
	case MotivationMedium:
		return "Nice effort! You're building consistency"
	case MotivationHigh:
		return "Excellent dedication! Keep up the great work"
	default:
		return ""
	}
}
