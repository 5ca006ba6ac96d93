package services

import (
	"errors"

	"github.com/GoodHedi/trackinglife/config"
	"github.com/GoodHedi/trackinglife/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetGoals returns the user's goal row, or nil when none has been saved yet.
func GetGoals(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

// UpsertGoals saves the user's daily targets, overwriting all four fields.
// A nil target clears the stored value. The unique index on user_id makes
// this a single atomic statement, so concurrent saves cannot duplicate rows.
func UpsertGoals(userID uint, calories, proteins, carbs, fats *float64) error {
	goal := models.Goal{
		UserID:        userID,
		DailyCalories: calories,
		DailyProteins: proteins,
		DailyCarbs:    carbs,
		DailyFats:     fats,
	}
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"daily_calories", "daily_proteins", "daily_carbs", "daily_fats"}),
	}).Create(&goal).Error
}

// MacroProgress pairs a day's consumed amount with the matching target.
// Percent is min(100, 100*consumed/goal) and is omitted when no goal is set.
type MacroProgress struct {
	Consumed float64  `json:"consumed"`
	Goal     *float64 `json:"goal,omitempty"`
	Percent  *float64 `json:"percent,omitempty"`
}

type DailySummary struct {
	Date     string        `json:"date"`
	Calories MacroProgress `json:"calories"`
	Proteins MacroProgress `json:"proteins"`
	Carbs    MacroProgress `json:"carbs"`
	Fats     MacroProgress `json:"fats"`
}

// GetDailySummary totals one day's diary and measures it against the user's
// goals. Each entry contributes density * quantity/100 per macro.
func GetDailySummary(userID uint, date string) (*DailySummary, error) {
	entries, err := ListDiaryForDate(userID, date)
	if err != nil {
		return nil, err
	}

	var cals, prot, carbs, fats float64
	for _, e := range entries {
		factor := e.Quantity / 100
		cals += e.Calories * factor
		prot += e.Proteins * factor
		carbs += e.Carbs * factor
		fats += e.Fats * factor
	}

	goal, err := GetGoals(userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		goal = &models.Goal{}
	}

	return &DailySummary{
		Date:     date,
		Calories: progress(cals, goal.DailyCalories),
		Proteins: progress(prot, goal.DailyProteins),
		Carbs:    progress(carbs, goal.DailyCarbs),
		Fats:     progress(fats, goal.DailyFats),
	}, nil
}

func progress(consumed float64, target *float64) MacroProgress {
	p := MacroProgress{Consumed: consumed, Goal: target}
	if target == nil || *target <= 0 {
		return p
	}
	pct := 100 * consumed / *target
	if pct > 100 {
		pct = 100
	}
	p.Percent = &pct
	return p
}
