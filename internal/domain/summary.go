package domain

// Summary is a user's full logging history with its calorie balance.
type Summary struct {
	Meals       []MealEntry    `json:"meals"`
	Workouts    []WorkoutEntry `json:"workouts"`
	NetCalories float64        `json:"net_calories"`
}

// NetCalories returns calories consumed minus calories burned. It is not
// floored at zero.
func NetCalories(meals []MealEntry, workouts []WorkoutEntry) float64 {
	var in, out float64
	for _, m := range meals {
		in += m.Calories
	}
	for _, w := range workouts {
		out += w.CaloriesBurned
	}
	return in - out
}
