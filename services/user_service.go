package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/models"
)

// UserService reads user aggregates and applies profile-level updates.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func withRecommendations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("FoodRecommendations.Food").
		Preload("ActivityRecommendations.Activity")
}

// GetByID returns the user together with its resolved recommendation lists.
func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	err := withRecommendations(s.db).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns every user aggregate. An empty table yields an empty slice.
func (s *UserService) List() ([]models.User, error) {
	users := []models.User{}
	if err := withRecommendations(s.db).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type ProfileUpdate struct {
	Name     *string
	Age      *int
	BodyType *models.BodyType
}

// UpdateProfile applies the supplied fields and returns the fresh aggregate.
func (s *UserService) UpdateProfile(userID uint, input ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.BodyType != nil {
		user.BodyType = input.BodyType
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return s.GetByID(userID)
}

// Delete removes the user and every relation row it owns, so no dangling
// recommendation or history rows survive.
func (s *UserService) Delete(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.UserFoodRecommendation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserActivityRecommendation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.History{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}
