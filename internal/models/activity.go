package models

import "time"

// Activity is a catalog entry of the activity tracker.
type Activity struct {
	ActivityID string  `json:"activity_id"`
	Name       string  `json:"name"`
	METValue   float64 `json:"met_value"`
	Category   string  `json:"category"`
}

// ActivityEntry is one logged activity session.
type ActivityEntry struct {
	UserID         string    `json:"user_id"`
	Date           string    `json:"date"`
	ActivityID     string    `json:"activity_id"`
	ActivityName   string    `json:"activity_name"`
	Duration       int       `json:"duration"`  // minutes
	Intensity      string    `json:"intensity"` // baixa, media, alta
	CaloriesBurned int       `json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}

// ActivityEntryCreate is the payload for logging an activity.
type ActivityEntryCreate struct {
	ActivityID string `json:"activity_id"`
	Duration   int    `json:"duration"`
	Intensity  string `json:"intensity"`
}

// TodayActivities is the aggregated view of today's activity entries.
type TodayActivities struct {
	TotalCaloriesBurned int             `json:"total_calories_burned"`
	Entries             []ActivityEntry `json:"entries"`
}
