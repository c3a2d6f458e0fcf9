package challenges

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

// CompleteChallenge marks a challenge as solved by the caller
// @Summary Complete a challenge
// @Description Record that the caller solved a challenge. Completing twice is a no-op.
// @Tags Challenges
// @Accept json
// @Produce json
// @Param request body CompleteChallengeRequest true "Challenge to complete"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /challenges/complete [post]
// @Security Bearer
func CompleteChallenge(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CompleteChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	challenge, _, err := services.CompleteChallenge(user.ID, req.ChallengeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			message := ErrChallengeNotFound
			if strings.Contains(err.Error(), "user") {
				message = ErrUserNotFound
			}
			response.Error(c, http.StatusNotFound, message)
			return
		}
		log.Println("Error completing challenge:", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCompleteChallenge)
		return
	}

	response.Success(c, http.StatusOK, "challenge", challenge)
}
