package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RoadToFit/roadtofit-be/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

func (ctl *FoodController) List(c *gin.Context) {
	foods, err := ctl.foods.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "OK",
		"foodList": foods,
	})
}

func (ctl *FoodController) GetByID(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid food id"})
		return
	}

	food, err := ctl.foods.GetByID(uint(foodID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"food":    food,
	})
}
