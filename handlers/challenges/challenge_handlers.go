package challenges

import (
	"errors"
	"log"
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetChallenges lists all challenges, newest first
// @Summary List challenges
// @Description Get every posted challenge with its submissions, newest first
// @Tags Challenges
// @Produce json
// @Success 200 {array} models.Challenge
// @Failure 401 {object} map[string]string
// @Router /challenges [get]
// @Security Bearer
func GetChallenges(c *gin.Context) {
	challenges, err := services.ListChallenges()
	if err != nil {
		log.Println("Error fetching challenges:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// GetTodayChallenges lists today's challenges with the caller's completion flag
// @Summary Today's challenges
// @Description Get the challenges posted today, each flagged with whether the caller completed it
// @Tags Challenges
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /challenges/today [get]
// @Security Bearer
func GetTodayChallenges(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	challenges, err := services.TodayChallenges()
	if err != nil {
		log.Println("Error fetching today's challenges:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}

	formatted := make([]TodayChallenge, 0, len(challenges))
	for i := range challenges {
		formatted = append(formatted, TodayChallenge{
			ID:          challenges[i].ID,
			Link:        challenges[i].Link,
			Difficulty:  challenges[i].Difficulty,
			CreatedAt:   challenges[i].CreatedAt,
			Submissions: challenges[i].Submissions,
			IsCompleted: services.UserCompletedChallenge(&challenges[i], user.ID),
		})
	}

	response.Success(c, http.StatusOK, "challenges", formatted)
}

// GetRecentChallenges lists today's challenges without completion flags
// @Summary Recent challenges
// @Description Get the challenges posted today
// @Tags Challenges
// @Produce json
// @Success 200 {array} models.Challenge
// @Router /challenges/recent [get]
func GetRecentChallenges(c *gin.Context) {
	challenges, err := services.TodayChallenges()
	if err != nil {
		log.Println("Error fetching recent challenges:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// CreateChallenge posts a new challenge
// @Summary Create a challenge
// @Description Post a link to an external problem with its difficulty
// @Tags Challenges
// @Accept json
// @Produce json
// @Param request body CreateChallengeRequest true "Challenge details"
// @Success 201 {object} models.Challenge
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /challenges [post]
// @Security Bearer
func CreateChallenge(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	challenge, err := services.CreateChallenge(req.Link, req.Difficulty)
	if err != nil {
		if errors.Is(err, services.ErrValidation) || errors.Is(err, services.ErrDuplicate) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error creating challenge:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateChallenge)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// DeleteChallenge removes a challenge and its submissions
// @Summary Delete a challenge
// @Description Remove a challenge and cascade-delete its submissions
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /challenges/{id} [delete]
// @Security Bearer
func DeleteChallenge(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingChallengeID)
		return
	}

	challenge, err := services.DeleteChallenge(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrChallengeNotFound)
			return
		}
		log.Println("Error deleting challenge:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteChallenge)
		return
	}

	response.Success(c, http.StatusOK, "challenge", challenge)
}
