package controllers

import (
	"net/http"

	"github.com/GoodHedi/trackinglife/services"

	"github.com/gin-gonic/gin"
)

type GoalsInput struct {
	DailyCalories *float64 `json:"daily_calories"`
	DailyProteins *float64 `json:"daily_proteins"`
	DailyCarbs    *float64 `json:"daily_carbs"`
	DailyFats     *float64 `json:"daily_fats"`
}

func GetGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goal, err := services.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load goals"})
		return
	}
	if goal == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// SaveGoals overwrites all four targets; omitted fields are cleared.
func SaveGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := services.UpsertGoals(userID, input.DailyCalories, input.DailyProteins, input.DailyCarbs, input.DailyFats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save goals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func GetDailySummary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date, err := parseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := services.GetDailySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
