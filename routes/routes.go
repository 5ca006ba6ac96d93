package routes

import (
	"github.com/GoodHedi/trackinglife/config"
	"github.com/GoodHedi/trackinglife/controllers"
	"github.com/GoodHedi/trackinglife/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes, rate-limited per IP
	auth := r.Group("/")
	auth.Use(middlewares.RateLimit(config.Envs.AuthRPS, config.Envs.AuthBurst))
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a bearer token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/me", controllers.GetProfile)

		api.GET("/foods", controllers.ListFoods)
		api.POST("/foods", controllers.CreateFood)
		api.DELETE("/foods/:id", controllers.DeleteFood)

		api.GET("/diary/:date", controllers.ListDiary)
		api.POST("/diary", controllers.AddDiaryEntry)
		api.DELETE("/diary/:id", controllers.DeleteDiaryEntry)

		api.GET("/goals", controllers.GetGoals)
		api.POST("/goals", controllers.SaveGoals)
		api.GET("/summary/:date", controllers.GetDailySummary)
	}

	return r
}
