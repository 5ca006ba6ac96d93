package services

import (
	"errors"

	"github.com/GoodHedi/trackinglife/config"
	"github.com/GoodHedi/trackinglife/models"

	"gorm.io/gorm"
)

// ErrInvalidFood means the referenced food does not exist or is not visible
// to the caller.
var ErrInvalidFood = errors.New("unknown food")

// DiaryEntryView joins an entry with its food's name and per-100g macro
// densities, the shape the diary page renders from.
type DiaryEntryView struct {
	ID       uint    `json:"id"`
	UserID   uint    `json:"user_id"`
	FoodID   uint    `json:"food_id"`
	Quantity float64 `json:"quantity"`
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// ListDiaryForDate returns the caller's entries for one day in insertion
// order (ascending id).
func ListDiaryForDate(userID uint, date string) ([]DiaryEntryView, error) {
	rows := []DiaryEntryView{}
	err := config.DB.
		Table("diary_entries").
		Select("diary_entries.id, diary_entries.user_id, diary_entries.food_id, diary_entries.quantity, diary_entries.date, diary_entries.meal_type, foods.name, foods.calories, foods.proteins, foods.carbs, foods.fats").
		Joins("JOIN foods ON foods.id = diary_entries.food_id").
		Where("diary_entries.user_id = ? AND diary_entries.date = ?", userID, date).
		Order("diary_entries.id asc").
		Scan(&rows).Error
	return rows, err
}

func AddDiaryEntry(userID, foodID uint, quantity float64, date, mealType string) (*models.DiaryEntry, error) {
	if _, err := FindVisibleFood(foodID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidFood
		}
		return nil, err
	}

	entry := models.DiaryEntry{
		UserID:   userID,
		FoodID:   foodID,
		Quantity: quantity,
		Date:     date,
		MealType: mealType,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteDiaryEntry removes one of the caller's entries; anything else is
// ErrNotFound, same contract as DeleteFood.
func DeleteDiaryEntry(entryID, userID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.DiaryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
