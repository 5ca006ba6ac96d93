package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GoodHedi/trackinglife/services"

	"github.com/gin-gonic/gin"
)

type FoodInput struct {
	Name     string   `json:"name" binding:"required"`
	Calories *float64 `json:"calories" binding:"required"` // per 100g; 0 is a valid value
	Proteins float64  `json:"proteins"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	IsPublic bool     `json:"is_public"`
}

func ListFoods(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	foods, err := services.ListFoods(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func CreateFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and calories required"})
		return
	}

	food, err := services.CreateFood(userID, input.Name, *input.Calories, input.Proteins, input.Carbs, input.Fats, input.IsPublic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create food"})
		return
	}
	c.JSON(http.StatusOK, food)
}

func DeleteFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	foodID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	if err := services.DeleteFood(uint(foodID), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found or not yours to delete"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete food"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
