package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/models"
)

// FoodService reads the food catalog. The catalog is reference data; nothing
// here writes.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

func (s *FoodService) List() ([]models.Food, error) {
	foods := []models.Food{}
	if err := s.db.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodService) GetByID(foodID uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}
