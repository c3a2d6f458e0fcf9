package auth

// Constants for error messages
const (
	ErrInvalidAssertion    = "Invalid identity assertion"
	ErrTokenGenerateFailed = "Failed to generate session token"
	ErrUserUpsertFailed    = "Failed to resolve user account"
	ErrNoTokenProvided     = "No token provided"
	ErrUserNotFound        = "User not found"
	MsgLogoutSuccess       = "Successfully logged out"
)

// SessionRequest carries the identity assertion issued by the external
// identity provider after a successful sign-in
type SessionRequest struct {
	Assertion string `json:"assertion" binding:"required"`
}
