package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RoadToFit/roadtofit-be/services"
)

type ActivityController struct {
	activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{activities: activities}
}

func (ctl *ActivityController) List(c *gin.Context) {
	activities, err := ctl.activities.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "OK",
		"activityList": activities,
	})
}

func (ctl *ActivityController) GetByID(c *gin.Context) {
	activityID, err := strconv.ParseUint(c.Param("activityId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid activity id"})
		return
	}

	activity, err := ctl.activities.GetByID(uint(activityID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "OK",
		"activity": activity,
	})
}
