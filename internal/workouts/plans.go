package workouts

type DietGoal string

const (
	DietWeightLoss DietGoal = "Weight Loss"
	DietMuscleGain DietGoal = "Muscle Gain"
	DietEndurance  DietGoal = "Endurance"
)

// WorkoutPlan suggests exercises per category.
func WorkoutPlan() map[Category][]string {
	return map[Category][]string{
		CategoryWarmUp:   {"5 min Jog", "Jumping Jacks", "Arm Circles", "Leg Swings", "Dynamic Stretching"},
		CategoryWorkout:  {"Push-ups", "Squats", "Plank", "Lunges", "Burpees", "Crunches"},
		CategoryCoolDown: {"Slow Walking", "Static Stretching", "Deep Breathing", "Yoga Poses"},
	}
}

// DietPlans lists suggested meals per fitness goal.
func DietPlans() map[DietGoal][]string {
	return map[DietGoal][]string{
		DietWeightLoss: {"Oatmeal with Fruits", "Grilled Chicken Salad", "Vegetable Soup", "Brown Rice & Stir-fry Veggies"},
		DietMuscleGain: {"Egg Omelet", "Chicken Breast", "Quinoa & Beans", "Protein Shake", "Greek Yogurt with Nuts"},
		DietEndurance:  {"Banana & Peanut Butter", "Whole Grain Pasta", "Sweet Potatoes", "Salmon & Avocado", "Trail Mix"},
	}
}
