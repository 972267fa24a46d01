package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RoadToFit/roadtofit-be/middlewares"
	"github.com/RoadToFit/roadtofit-be/services"
)

type HistoryController struct {
	histories *services.HistoryService
}

func NewHistoryController(histories *services.HistoryService) *HistoryController {
	return &HistoryController{histories: histories}
}

type CreateHistoryInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Status string  `json:"status"`
}

func (ctl *HistoryController) Create(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var input CreateHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	history, err := ctl.histories.Create(userID, input.Weight, input.Height, input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "History successfully created",
		"history": history,
	})
}

func (ctl *HistoryController) List(c *gin.Context) {
	histories, err := ctl.histories.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "OK",
		"historyList": histories,
	})
}

func (ctl *HistoryController) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid user id"})
		return
	}

	histories, err := ctl.histories.ListByUser(uint(userID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "OK",
		"historyList": histories,
	})
}
