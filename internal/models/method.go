package models

import "time"

// ChallengeDays is the length of the challenge.
const ChallengeDays = 21

// MethodProgress aggregates the user's challenge state: goals (absent
// until set), all daily records ordered by day number, and the count of
// completed days.
type MethodProgress struct {
	Goals              *UserGoals    `json:"goals"`
	DailyRecords       []DailyRecord `json:"daily_records"`
	TotalDaysCompleted int           `json:"total_days_completed"`
}

// FinalReflection is written once the 21 days are over.
type FinalReflection struct {
	UserID        string    `json:"user_id"`
	Mudancas      string    `json:"mudancas"`
	NovaIntencao  string    `json:"nova_intencao"`
	DataConclusao time.Time `json:"data_conclusao"`
	CreatedAt     time.Time `json:"created_at"`
}

// FinalReflectionCreate is the payload for submitting the final reflection.
type FinalReflectionCreate struct {
	Mudancas     string `json:"mudancas"`
	NovaIntencao string `json:"nova_intencao"`
}
