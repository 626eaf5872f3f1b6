package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	goalService service.GoalService,
	readinessService service.ReadinessService,
	profileService service.ProfileService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	goalHandler := NewGoalHandler(goalService)
	readinessHandler := NewReadinessHandler(readinessService)
	profileHandler := NewProfileHandler(profileService)

	authMiddleware := AuthMiddleware(authService)

	router.Use(RequestIDMiddleware(), LoggerMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		apiV1.GET("/exercises/facets", exerciseHandler.GetFacets)
		apiV1.GET("/exercises/:id", exerciseHandler.GetExercise)

		apiV1.GET("/readiness/factors", readinessHandler.GetFactors)
		apiV1.POST("/readiness/score", readinessHandler.Score)

		apiV1.GET("/profile/fitness-goals", profileHandler.GetFitnessGoalOptions)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		profileGroup := protected.Group("/me/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.UpdateProfile)
			profileGroup.POST("/goals/:goalId", profileHandler.ToggleFitnessGoal)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/favorites", exerciseHandler.ListFavorites)
			exerciseGroup.POST("/:id/favorite", exerciseHandler.ToggleFavorite)
		}

		goalGroup := protected.Group("/goals")
		{
			goalGroup.GET("", goalHandler.ListGoals)
			goalGroup.GET("/stats", goalHandler.GetStats)
			goalGroup.POST("", goalHandler.CreateGoal)
			goalGroup.PATCH("/:id/progress", goalHandler.UpdateProgress)
			goalGroup.PATCH("/:id/status", goalHandler.SetStatus)
			goalGroup.DELETE("/:id", goalHandler.DeleteGoal)
		}

		readinessGroup := protected.Group("/readiness/checkins")
		{
			readinessGroup.POST("", readinessHandler.SubmitCheckIn)
			readinessGroup.GET("/:id/snapshot", readinessHandler.GetSnapshot)
		}
	}
}
