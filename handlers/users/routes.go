package users

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the current user
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/streak", GetStreak)
		user.GET("/stats", GetStats)
		user.GET("/history", GetHistory)
		user.POST("/profile", UpdateProfile)
		user.POST("/avatar", UpdateAvatar)
	}
}
