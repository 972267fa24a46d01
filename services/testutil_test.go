package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RoadToFit/roadtofit-be/models"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database per test. The named shared
// cache keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Activity{},
		&models.UserFoodRecommendation{},
		&models.UserActivityRecommendation{},
		&models.History{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret", time.Hour)
}

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, newTestTokenService(), bcrypt.MinCost)
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user, err := newTestAuthService(db).Register(username, "secret123", "Test User", models.GenderFemale)
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

func seedFoods(t *testing.T, db *gorm.DB, menus ...string) []models.Food {
	t.Helper()

	foods := make([]models.Food, 0, len(menus))
	for _, menu := range menus {
		foods = append(foods, models.Food{
			Menu:         menu,
			Calories:     100,
			Protein:      10,
			Fat:          5,
			Carbohydrate: 20,
		})
	}
	if err := db.Create(&foods).Error; err != nil {
		t.Fatalf("seed foods: %v", err)
	}
	return foods
}

func seedActivities(t *testing.T, db *gorm.DB, names ...string) []models.Activity {
	t.Helper()

	activities := make([]models.Activity, 0, len(names))
	for _, name := range names {
		activities = append(activities, models.Activity{
			Activity:   name,
			Category:   "cardio",
			CalPerHour: 300,
		})
	}
	if err := db.Create(&activities).Error; err != nil {
		t.Fatalf("seed activities: %v", err)
	}
	return activities
}

func foodIDSet(user *models.User) map[uint]bool {
	out := make(map[uint]bool, len(user.FoodRecommendations))
	for _, rec := range user.FoodRecommendations {
		out[rec.FoodID] = true
	}
	return out
}

func activityIDSet(user *models.User) map[uint]bool {
	out := make(map[uint]bool, len(user.ActivityRecommendations))
	for _, rec := range user.ActivityRecommendations {
		out[rec.ActivityID] = true
	}
	return out
}
