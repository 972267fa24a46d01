package models

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type BodyType string

const (
	BodyTypeEctomorph BodyType = "ECTOMORPH"
	BodyTypeMesomorph BodyType = "MESOMORPH"
	BodyTypeEndomorph BodyType = "ENDOMORPH"
)

type User struct {
	ID       uint   `gorm:"primarykey" json:"userId"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Bcrypt hash, never the plaintext. Excluded from every response.
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Gender   Gender    `gorm:"not null" json:"gender"`
	Age      *int      `json:"age"`
	BodyType *BodyType `json:"bodyType"`
	Bmi      *float64  `json:"bmi"`
	ImageURL *string   `json:"imageUrl"`

	FoodRecommendations     []UserFoodRecommendation     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ActivityRecommendations []UserActivityRecommendation `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
