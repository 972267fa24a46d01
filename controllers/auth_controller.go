package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RoadToFit/roadtofit-be/models"
	"github.com/RoadToFit/roadtofit-be/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type RegisterInput struct {
	Username string        `json:"username" binding:"required"`
	Password string        `json:"password" binding:"required"`
	Name     string        `json:"name" binding:"required"`
	Gender   models.Gender `json:"gender" binding:"required,oneof=MALE FEMALE"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if _, err := ctl.auth.Register(input.Username, input.Password, input.Name, input.Gender); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User successfully created",
	})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, token, err := ctl.auth.Login(input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login success",
		"user":    toUserResponse(user),
		"token":   token,
	})
}
