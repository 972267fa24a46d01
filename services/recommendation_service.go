package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/models"
)

// RecommendationService replaces a user's recommendation sets. The whole
// replacement, BMI included, happens inside one transaction: readers either
// see the previous sets with the previous BMI or the new sets with the new
// BMI, never a mix.
type RecommendationService struct {
	db *gorm.DB
}

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

// Assign swaps both recommendation sets and the BMI in a single transaction.
// Duplicate ids collapse to one row; empty sets clear their category. Any
// failure rolls the whole replacement back.
func (s *RecommendationService) Assign(userID uint, bmi float64, foodIDs, activityIDs []uint) (*models.User, error) {
	foodIDs = dedupeIDs(foodIDs)
	activityIDs = dedupeIDs(activityIDs)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Updating the user row first takes its row lock, so two assigns
		// for the same user cannot interleave their delete/insert phases.
		res := tx.Model(&models.User{}).Where("id = ?", userID).Update("bmi", bmi)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		if err := validateIDs(tx, &models.Food{}, foodIDs, ErrFoodNotFound); err != nil {
			return err
		}
		if err := validateIDs(tx, &models.Activity{}, activityIDs, ErrActivityNotFound); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.UserFoodRecommendation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserActivityRecommendation{}).Error; err != nil {
			return err
		}

		if len(foodIDs) > 0 {
			rows := make([]models.UserFoodRecommendation, 0, len(foodIDs))
			for _, id := range foodIDs {
				rows = append(rows, models.UserFoodRecommendation{UserID: userID, FoodID: id})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if len(activityIDs) > 0 {
			rows := make([]models.UserActivityRecommendation, 0, len(activityIDs))
			for _, id := range activityIDs {
				rows = append(rows, models.UserActivityRecommendation{UserID: userID, ActivityID: id})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := withRecommendations(s.db).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// validateIDs fails with notFound unless every id references an existing
// reference row.
func validateIDs(tx *gorm.DB, model interface{}, ids []uint, notFound error) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(model).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return notFound
	}
	return nil
}
