package workouts

// METTable holds the intensity factor per category.
var METTable = map[Category]float64{
	CategoryWarmUp:   3,
	CategoryWorkout:  6,
	CategoryCoolDown: 2.5,
}

// DefaultMET applies to categories missing from METTable.
const DefaultMET = 5.0

func METFor(c Category) float64 {
	if met, ok := METTable[c]; ok {
		return met
	}
	return DefaultMET
}

// CaloriesFromMET estimates burned kcal: MET × 3.5 × weight / 200 × minutes.
func CaloriesFromMET(met, weightKg float64, durationMin int) float64 {
	return met * 3.5 * weightKg / 200 * float64(durationMin)
}
