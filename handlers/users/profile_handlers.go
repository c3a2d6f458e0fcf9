package users

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

const historyLimit = 10

// GetStreak returns the caller's completion streak
// @Summary Get streak
// @Description Get the caller's current and longest consecutive-day completion streak
// @Tags Users
// @Produce json
// @Success 200 {object} services.Streak
// @Failure 401 {object} map[string]string
// @Router /user/streak [get]
// @Security Bearer
func GetStreak(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	streak, err := services.GetStreak(user.ID)
	if err != nil {
		log.Println("Error fetching streak:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchStreak)
		return
	}
	c.JSON(http.StatusOK, streak)
}

// GetStats returns the caller's counters, rank and streak
// @Summary Get stats
// @Description Get the caller's solved counters, leaderboard rank and streak
// @Tags Users
// @Produce json
// @Success 200 {object} services.UserStats
// @Failure 401 {object} map[string]string
// @Router /user/stats [get]
// @Security Bearer
func GetStats(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	stats, err := services.GetUserStats(user)
	if err != nil {
		log.Println("Error fetching user stats:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchStats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetHistory returns the caller's recent completions
// @Summary Get history
// @Description Get the caller's most recently completed challenges
// @Tags Users
// @Produce json
// @Success 200 {array} services.HistoryEntry
// @Failure 401 {object} map[string]string
// @Router /user/history [get]
// @Security Bearer
func GetHistory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	history, err := services.GetUserHistory(user.ID, historyLimit)
	if err != nil {
		log.Println("Error fetching history:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHistory)
		return
	}
	c.JSON(http.StatusOK, history)
}

// UpdateProfile renames the caller
// @Summary Update profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "New display name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /user/profile [post]
// @Security Bearer
func UpdateProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := services.UpdateProfile(user, strings.TrimSpace(req.Name)); err != nil {
		if errors.Is(err, services.ErrValidation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error updating profile:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateProfile)
		return
	}

	response.Success(c, http.StatusOK, "user", user)
}

// UpdateAvatar switches the caller's avatar style
// @Summary Update avatar
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UpdateAvatarRequest true "New avatar style"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /user/avatar [post]
// @Security Bearer
func UpdateAvatar(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := services.UpdateAvatar(user, req.AvatarStyle); err != nil {
		if errors.Is(err, services.ErrValidation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error updating avatar:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateAvatar)
		return
	}

	response.Success(c, http.StatusOK, "user", user)
}
