package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/models"
)

// ActivityService reads the activity catalog.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) List() ([]models.Activity, error) {
	activities := []models.Activity{}
	if err := s.db.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *ActivityService) GetByID(activityID uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}
