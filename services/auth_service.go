package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/models"
	"github.com/RoadToFit/roadtofit-be/utils"
)

// AuthService owns registration and credential verification.
type AuthService struct {
	db         *gorm.DB
	tokens     *TokenService
	bcryptCost int
}

func NewAuthService(db *gorm.DB, tokens *TokenService, bcryptCost int) *AuthService {
	return &AuthService{db: db, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a user with a bcrypt-hashed password. The plaintext is
// never stored or logged.
func (s *AuthService) Register(username, password, name string, gender models.Gender) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: hashed,
		Name:     name,
		Gender:   gender,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index catches the race the pre-check can miss.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return &user, nil
}

// Login verifies the credentials and issues a session token. Unknown
// username and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.
		Preload("FoodRecommendations.Food").
		Preload("ActivityRecommendations.Activity").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
