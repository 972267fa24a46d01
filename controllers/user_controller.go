package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RoadToFit/roadtofit-be/middlewares"
	"github.com/RoadToFit/roadtofit-be/models"
	"github.com/RoadToFit/roadtofit-be/services"
)

type UserController struct {
	users           *services.UserService
	recommendations *services.RecommendationService
}

func NewUserController(users *services.UserService, recommendations *services.RecommendationService) *UserController {
	return &UserController{users: users, recommendations: recommendations}
}

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.users.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	userList := make([]UserResponse, 0, len(users))
	for i := range users {
		userList = append(userList, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "OK",
		"userList": userList,
	})
}

func (ctl *UserController) Profile(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	user, err := ctl.users.GetByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"user":    toUserResponse(user),
	})
}

type UpdateUserInput struct {
	Name     *string          `json:"name"`
	Age      *int             `json:"age"`
	BodyType *models.BodyType `json:"bodyType" binding:"omitempty,oneof=ECTOMORPH MESOMORPH ENDOMORPH"`
}

func (ctl *UserController) Update(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := ctl.users.UpdateProfile(userID, services.ProfileUpdate{
		Name:     input.Name,
		Age:      input.Age,
		BodyType: input.BodyType,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"user":    toUserResponse(user),
	})
}

type UpdateRecommendationInput struct {
	Bmi                     *float64 `json:"bmi" binding:"required"`
	FoodRecommendations     []uint   `json:"foodRecommendations"`
	ActivityRecommendations []uint   `json:"activityRecommendations"`
}

// UpdateRecommendation replaces both recommendation sets and the BMI in one
// transaction. Omitted lists count as empty: the call has no "leave
// unchanged" semantics.
func (ctl *UserController) UpdateRecommendation(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var input UpdateRecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := ctl.recommendations.Assign(userID, *input.Bmi, input.FoodRecommendations, input.ActivityRecommendations)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"user":    toUserResponse(user),
	})
}

func (ctl *UserController) Delete(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	if err := ctl.users.Delete(userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User successfully deleted",
	})
}
