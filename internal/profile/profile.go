package profile

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const DefaultWeeklyCalorieGoal = 2000

var ErrInvalidProfileInput = errors.New("invalid profile input")

type UserProfile struct {
	Name              string  `json:"name"`
	RegnID            string  `json:"regn_id"`
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	BMI               float64 `json:"bmi"`
	BMR               float64 `json:"bmr"`
	WeeklyCalorieGoal float64 `json:"weekly_calorie_goal"`
}

// ProfileInput carries the raw, unparsed profile form values.
type ProfileInput struct {
	Name              string
	RegnID            string
	Age               string
	Gender            string
	Height            string
	Weight            string
	WeeklyCalorieGoal string
}

// ParseProfileInput turns raw form values into a profile with BMI and BMR
// derived. Blank numbers count as 0; a blank gender means "M".
func ParseProfileInput(in ProfileInput) (UserProfile, error) {
	age, err := strconv.Atoi(orZero(in.Age))
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: age %q is not a whole number", ErrInvalidProfileInput, in.Age)
	}
	height, err := parseFinite(orZero(in.Height))
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: height %q is not a number", ErrInvalidProfileInput, in.Height)
	}
	weight, err := parseFinite(orZero(in.Weight))
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: weight %q is not a number", ErrInvalidProfileInput, in.Weight)
	}
	if height <= 0 {
		return UserProfile{}, fmt.Errorf("%w: height must be positive", ErrInvalidProfileInput)
	}
	if weight < 0 {
		return UserProfile{}, fmt.Errorf("%w: weight must not be negative", ErrInvalidProfileInput)
	}

	goal := float64(DefaultWeeklyCalorieGoal)
	if g := strings.TrimSpace(in.WeeklyCalorieGoal); g != "" {
		goal, err = parseFinite(g)
		if err != nil || goal < 0 {
			return UserProfile{}, fmt.Errorf("%w: weekly calorie goal %q", ErrInvalidProfileInput, in.WeeklyCalorieGoal)
		}
	}

	gender := strings.ToUpper(strings.TrimSpace(in.Gender))
	if gender == "" {
		gender = "M"
	}

	return UserProfile{
		Name:              strings.TrimSpace(in.Name),
		RegnID:            strings.TrimSpace(in.RegnID),
		Age:               age,
		Gender:            gender,
		HeightCm:          height,
		WeightKg:          weight,
		BMI:               ComputeBMI(weight, height),
		BMR:               ComputeBMR(weight, height, age, gender),
		WeeklyCalorieGoal: goal,
	}, nil
}

var errNotFinite = errors.New("not a finite number")

// parseFinite is strconv.ParseFloat without NaN and the infinities, which
// cannot be encoded as JSON.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

func orZero(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	return s
}
