package models

// Goal holds a user's daily intake targets, at most one row per user.
// A nil target means that macro is not tracked.
type Goal struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	UserID        uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	DailyCalories *float64 `json:"daily_calories"`
	DailyProteins *float64 `json:"daily_proteins"`
	DailyCarbs    *float64 `json:"daily_carbs"`
	DailyFats     *float64 `json:"daily_fats"`
}

func (Goal) TableName() string { return "user_goals" }
