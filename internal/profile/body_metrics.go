package profile

import "strings"

// ComputeBMI = weight / (height in m)². A zero height yields +Inf.
func ComputeBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// ComputeBMR uses the Mifflin-St Jeor equation.
func ComputeBMR(weightKg, heightCm float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(strings.TrimSpace(gender), "M") {
		return base + 5
	}
	return base - 161
}
