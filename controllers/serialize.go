package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RoadToFit/roadtofit-be/models"
	"github.com/RoadToFit/roadtofit-be/services"
	"github.com/RoadToFit/roadtofit-be/utils"
)

// UserResponse is the outward shape of a user aggregate: the recommendation
// rows are flattened to the referenced food/activity records and the password
// hash never leaves the model layer.
type UserResponse struct {
	UserID                  uint              `json:"userId"`
	Username                string            `json:"username"`
	Name                    string            `json:"name"`
	Gender                  models.Gender     `json:"gender"`
	Age                     *int              `json:"age"`
	BodyType                *models.BodyType  `json:"bodyType"`
	Bmi                     *float64          `json:"bmi"`
	BmiCategory             *string           `json:"bmiCategory"`
	ImageURL                *string           `json:"imageUrl"`
	FoodRecommendations     []models.Food     `json:"foodRecommendations"`
	ActivityRecommendations []models.Activity `json:"activityRecommendations"`
	CreatedAt               time.Time         `json:"createdAt"`
	UpdatedAt               time.Time         `json:"updatedAt"`
}

func toUserResponse(user *models.User) UserResponse {
	foods := make([]models.Food, 0, len(user.FoodRecommendations))
	for _, rec := range user.FoodRecommendations {
		foods = append(foods, rec.Food)
	}
	activities := make([]models.Activity, 0, len(user.ActivityRecommendations))
	for _, rec := range user.ActivityRecommendations {
		activities = append(activities, rec.Activity)
	}

	var category *string
	if user.Bmi != nil {
		c := utils.BMICategory(*user.Bmi)
		category = &c
	}

	return UserResponse{
		UserID:                  user.ID,
		Username:                user.Username,
		Name:                    user.Name,
		Gender:                  user.Gender,
		Age:                     user.Age,
		BodyType:                user.BodyType,
		Bmi:                     user.Bmi,
		BmiCategory:             category,
		ImageURL:                user.ImageURL,
		FoodRecommendations:     foods,
		ActivityRecommendations: activities,
		CreatedAt:               user.CreatedAt,
		UpdatedAt:               user.UpdatedAt,
	}
}

// respondServiceError maps service errors onto response statuses. Store
// errors are logged for operators and replaced with a safe message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrFoodNotFound),
		errors.Is(err, services.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
	}
}
