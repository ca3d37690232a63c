package router

import (
	"time"

	"github.com/KashifaTajreen/Fitness/internal/auth"
	"github.com/KashifaTajreen/Fitness/internal/diary"
	"github.com/KashifaTajreen/Fitness/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *auth.Handler, diaryHandler *diary.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	diaryGroup := r.Group("/diary")
	diaryGroup.Use(middleware.AuthMiddleware())
	{
		diaryGroup.POST("/:date/meals", diaryHandler.LogMeals)
		diaryGroup.GET("/:date", diaryHandler.Day)
		diaryGroup.DELETE("/:date", diaryHandler.ClearDay)
		diaryGroup.DELETE("", diaryHandler.ResetAll)
	}

	return r
}
