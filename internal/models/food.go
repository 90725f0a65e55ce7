package models

import "time"

// Food is a catalog entry of the calorie tracker.
type Food struct {
	FoodID          string `json:"food_id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	CaloriesPer100g int    `json:"calories_per_100g"`
	DetoxFriendly   bool   `json:"detox_friendly"`
}

// FoodEntry is one logged portion of food.
type FoodEntry struct {
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	MealType  string    `json:"meal_type"` // cafe_manha, almoco, jantar, lanche
	FoodID    string    `json:"food_id"`
	FoodName  string    `json:"food_name"`
	Portions  float64   `json:"portions"` // grams
	Calories  int       `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}

// FoodEntryCreate is the payload for logging a meal.
type FoodEntryCreate struct {
	MealType string  `json:"meal_type"`
	FoodID   string  `json:"food_id"`
	Portions float64 `json:"portions"`
}

// TodayCalories is the aggregated view of today's food entries.
type TodayCalories struct {
	TotalCalories int                    `json:"total_calories"`
	ByMeal        map[string][]FoodEntry `json:"by_meal"`
	AllEntries    []FoodEntry            `json:"all_entries"`
}
