package services

import (
	"errors"

	"github.com/GoodHedi/trackinglife/config"
	"github.com/GoodHedi/trackinglife/models"
)

// ErrNotFound covers both a missing row and a row the caller does not own.
// The two cases are deliberately indistinguishable so deletes never leak
// whether another user's resource exists.
var ErrNotFound = errors.New("not found")

// ListFoods returns every public food plus the caller's own, by name.
func ListFoods(userID uint) ([]models.Food, error) {
	var foods []models.Food
	err := config.DB.
		Where("user_id = ? OR is_public = ?", userID, true).
		Order("name asc").
		Find(&foods).Error
	return foods, err
}

func CreateFood(userID uint, name string, calories, proteins, carbs, fats float64, isPublic bool) (*models.Food, error) {
	food := models.Food{
		Name:     name,
		Calories: calories,
		Proteins: proteins,
		Carbs:    carbs,
		Fats:     fats,
		UserID:   &userID,
		IsPublic: isPublic,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// DeleteFood removes a food the caller owns. Deleting someone else's food,
// public or not, reports ErrNotFound without touching the row.
func DeleteFood(foodID, userID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		Delete(&models.Food{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindVisibleFood fetches a food only when the caller may see it.
func FindVisibleFood(foodID, userID uint) (*models.Food, error) {
	var food models.Food
	err := config.DB.
		Where("id = ? AND (user_id = ? OR is_public = ?)", foodID, userID, true).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}
