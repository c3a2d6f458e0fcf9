package admin

import (
	"api/middleware"
	"api/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to administration
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/admin")
	group.Use(middleware.AuthMiddleware())
	{
		// Any signed-in user may request the rotation; eligibility is
		// checked by the service.
		group.POST("/request", RequestAdmin)

		adminOnly := group.Group("")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.POST("/eligibility", ManageEligibility)
			adminOnly.GET("/eligibility", ListEligibility)
			adminOnly.POST("/reset-points", ResetPoints)
			adminOnly.POST("/migrate-points", MigratePoints)
		}
	}
}
