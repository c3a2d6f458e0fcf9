package admin

// Constants for error messages
const (
	ErrInvalidRequest          = "Invalid request data"
	ErrUserNotFound            = "User not found"
	ErrFailedUpdateEligibility = "Failed to update admin eligibility"
	ErrFailedFetchEligibility  = "Failed to fetch eligible users"
	ErrFailedAdminRequest      = "Failed to process admin request"
	ErrFailedResetPoints       = "Failed to reset stats"
	ErrFailedMigratePoints     = "Failed to migrate points"
)

// EligibilityRequest model for toggling a user's admin eligibility
type EligibilityRequest struct {
	UserEmail  string `json:"userEmail" binding:"required,email"`
	IsEligible *bool  `json:"isEligible" binding:"required"`
}
