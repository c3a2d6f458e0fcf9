package admin

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// ManageEligibility toggles whether a user can request the admin rotation
// @Summary Toggle admin eligibility
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body EligibilityRequest true "Target user and eligibility"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/eligibility [post]
// @Security Bearer
func ManageEligibility(c *gin.Context) {
	var req EligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	user, err := services.SetEligibility(req.UserEmail, *req.IsEligible)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		log.Println("Error updating eligibility:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateEligibility)
		return
	}

	response.Success(c, http.StatusOK, "user", gin.H{
		"email":              user.Email,
		"name":               user.Name,
		"isEligibleForAdmin": user.IsEligibleForAdmin,
	})
}

// ListEligibility lists every user with their eligibility status
// @Summary List admin eligibility
// @Tags Admin
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]string
// @Router /admin/eligibility [get]
// @Security Bearer
func ListEligibility(c *gin.Context) {
	users, err := services.ListEligibility()
	if err != nil {
		log.Println("Error fetching eligibility list:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchEligibility)
		return
	}
	c.JSON(http.StatusOK, users)
}

// RequestAdmin hands the daily admin slot to the caller if eligible
// @Summary Request admin rotation
// @Description Take the daily admin slot. Allowed once every 7 days for eligible users.
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/request [post]
// @Security Bearer
func RequestAdmin(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if err := services.RequestAdminRotation(user); err != nil {
		status := services.HTTPStatusFromError(err)
		if status == http.StatusInternalServerError {
			log.Println("Error processing admin request:", err)
			response.Error(c, status, ErrFailedAdminRequest)
			return
		}
		response.Error(c, status, err.Error())
		return
	}

	response.Success(c, http.StatusOK, "user", gin.H{
		"isAdminToday":  user.IsAdminToday,
		"lastAdminDate": user.LastAdminDate,
	})
}

// ResetPoints zeroes every user's solved counters
// @Summary Reset all counters
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /admin/reset-points [post]
// @Security Bearer
func ResetPoints(c *gin.Context) {
	updated, err := services.ResetPoints()
	if err != nil {
		log.Println("Error resetting counters:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedResetPoints)
		return
	}
	response.Message(c, fmt.Sprintf("Reset stats for %d users", updated))
}

// MigratePoints backfills the points column from solved totals
// @Summary Migrate points
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /admin/migrate-points [post]
// @Security Bearer
func MigratePoints(c *gin.Context) {
	updated, err := services.MigratePoints()
	if err != nil {
		log.Println("Error migrating points:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedMigratePoints)
		return
	}
	response.Message(c, fmt.Sprintf("Points field initialized for %d users", updated))
}
