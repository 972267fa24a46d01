package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/models"
	"github.com/RoadToFit/roadtofit-be/utils"
)

// HistoryService records and lists body measurements.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Create stores one measurement. When the caller omits the status, it is
// derived from the measurement's BMI category.
func (s *HistoryService) Create(userID uint, weight, height float64, status string) (*models.History, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if status == "" {
		bmi, err := utils.CalculateBMI(height, weight)
		if err != nil {
			return nil, err
		}
		status = utils.BMICategory(bmi)
	}

	history := models.History{
		UserID: userID,
		Weight: weight,
		Height: height,
		Status: status,
	}
	if err := s.db.Create(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

func (s *HistoryService) List() ([]models.History, error) {
	histories := []models.History{}
	if err := s.db.Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}

func (s *HistoryService) ListByUser(userID uint) ([]models.History, error) {
	histories := []models.History{}
	if err := s.db.Where("user_id = ?", userID).Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}
