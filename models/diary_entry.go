package models

import "time"

// DiaryEntry records one food eaten on one calendar day. Entries are never
// updated in place; the correction path is delete + recreate.
type DiaryEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FoodID    uint      `gorm:"index;not null" json:"food_id"`
	Quantity  float64   `gorm:"not null" json:"quantity"` // grams
	Date      string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	MealType  string    `json:"meal_type"` // breakfast/lunch/dinner/snack, free-form
	CreatedAt time.Time `json:"-"`
}

func (DiaryEntry) TableName() string { return "diary_entries" }
