package auth

import (
	"errors"
	"net/http"
	"time"

	"api/config"
	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// identityClaims are the claims the identity provider asserts about a
// signed-in user
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// verifyIdentityAssertion checks the provider's signature and extracts the
// asserted identity
func verifyIdentityAssertion(assertion string) (*identityClaims, error) {
	token, err := jwt.ParseWithClaims(assertion, &identityClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.IdentitySecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, errors.New("invalid assertion")
	}
	return claims, nil
}

// setCookieToken sets the session token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(sessionTTL.Seconds()),
		"/",
		"",
		true,
		true,
	)
}

// CreateSession exchanges an identity assertion for a session cookie
// @Summary Sign in
// @Description Verifies the identity provider's assertion, creates the user on first sign-in, and sets the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SessionRequest true "Identity assertion"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/session [post]
func CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	claims, err := verifyIdentityAssertion(req.Assertion)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidAssertion)
		return
	}

	user, err := services.UpsertUser(claims.Email, claims.Name)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUserUpsertFailed)
		return
	}

	token, err := middleware.GenerateSessionToken(user, sessionTTL)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}
	setCookieToken(c, token)

	response.Success(c, http.StatusOK, "user", user)
}

// CheckAuth returns the currently authenticated user
// @Summary Check session
// @Description Returns the user bound to the current session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	response.Message(c, MsgLogoutSuccess)
}
