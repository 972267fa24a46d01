package models

// UserFoodRecommendation links one recommended food to one user. Rows are
// only ever written by the recommendation assigner, which replaces a user's
// full set in a single transaction.
type UserFoodRecommendation struct {
	ID     uint `gorm:"primarykey" json:"-"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_food" json:"-"`
	FoodID uint `gorm:"not null;uniqueIndex:idx_user_food" json:"-"`
	Food   Food `json:"food"`
}

// UserActivityRecommendation is the activity counterpart of
// UserFoodRecommendation, with identical replacement semantics.
type UserActivityRecommendation struct {
	ID         uint     `gorm:"primarykey" json:"-"`
	UserID     uint     `gorm:"not null;uniqueIndex:idx_user_activity" json:"-"`
	ActivityID uint     `gorm:"not null;uniqueIndex:idx_user_activity" json:"-"`
	Activity   Activity `json:"activity"`
}
