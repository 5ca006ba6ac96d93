package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GoodHedi/trackinglife/services"

	"github.com/gin-gonic/gin"
)

type DiaryEntryInput struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"` // grams
	Date     string  `json:"date" binding:"required"`
	MealType string  `json:"meal_type"`
}

func parseDay(s string) (string, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", err
	}
	return d.Format("2006-01-02"), nil
}

func ListDiary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date, err := parseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	entries, err := services.ListDiaryForDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list diary"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func AddDiaryEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input DiaryEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_id, positive quantity and date required"})
		return
	}

	date, err := parseDay(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	entry, err := services.AddDiaryEntry(userID, input.FoodID, input.Quantity, date, input.MealType)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFood) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown food"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": entry.ID, "success": true})
}

func DeleteDiaryEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.DeleteDiaryEntry(uint(entryID), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found or not yours to delete"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
