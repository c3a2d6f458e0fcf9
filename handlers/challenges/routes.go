package challenges

import (
	"api/middleware"
	"api/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to challenges
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.GET("/challenges/recent", GetRecentChallenges)

	challenges := r.Group("/challenges")
	challenges.Use(middleware.AuthMiddleware())
	{
		challenges.GET("", GetChallenges)
		challenges.GET("/today", GetTodayChallenges)
		challenges.POST("/complete", CompleteChallenge)

		// Admin-only management routes
		admin := challenges.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("", CreateChallenge)
			admin.DELETE("/:id", DeleteChallenge)
		}
	}
}
