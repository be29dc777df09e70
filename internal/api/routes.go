package api

import (
	"fittrack/exercise-tracker/internal/metrics"
	"fittrack/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface onto the router.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(userService, exerciseService)

	// Landing page
	router.StaticFile("/", "./web/index.html")

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiGroup := router.Group("/api")
	{
		usersGroup := apiGroup.Group("/users")
		{
			usersGroup.GET("", userHandler.ListUsers)
			usersGroup.POST("", userHandler.CreateUser)

			// Per-user exercise endpoints
			usersGroup.POST("/:id/exercises", exerciseHandler.AddExercise)
			usersGroup.GET("/:id/logs", exerciseHandler.GetLog)
		}
	}
}
