package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/config"
	"github.com/RoadToFit/roadtofit-be/controllers"
	"github.com/RoadToFit/roadtofit-be/middlewares"
	"github.com/RoadToFit/roadtofit-be/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := services.NewAuthService(db, tokens, cfg.BcryptCost)
	users := services.NewUserService(db)
	recommendations := services.NewRecommendationService(db)
	foods := services.NewFoodService(db)
	activities := services.NewActivityService(db)
	histories := services.NewHistoryService(db)

	authController := controllers.NewAuthController(auth)
	userController := controllers.NewUserController(users, recommendations)
	foodController := controllers.NewFoodController(foods)
	activityController := controllers.NewActivityController(activities)
	historyController := controllers.NewHistoryController(histories)

	r := gin.Default()
	api := r.Group("/api")

	account := api.Group("/account")
	{
		account.POST("/register", authController.Register)
		account.POST("/login", authController.Login)
	}

	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware(tokens))
	{
		user.GET("/", userController.List)
		user.GET("/profile", userController.Profile)
		user.PUT("/update", userController.Update)
		user.PUT("/recommendation", userController.UpdateRecommendation)
		user.DELETE("/delete", userController.Delete)
	}

	food := api.Group("/food")
	food.Use(middlewares.AuthMiddleware(tokens))
	{
		food.GET("/", foodController.List)
		food.GET("/:foodId", foodController.GetByID)
	}

	activity := api.Group("/activity")
	activity.Use(middlewares.AuthMiddleware(tokens))
	{
		activity.GET("/", activityController.List)
		activity.GET("/:activityId", activityController.GetByID)
	}

	history := api.Group("/history")
	history.Use(middlewares.AuthMiddleware(tokens))
	{
		history.POST("", historyController.Create)
		history.GET("", historyController.List)
		history.GET("/:userId", historyController.ListByUser)
	}

	return r
}
