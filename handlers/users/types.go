package users

// Constants for error messages
const (
	ErrInvalidRequest      = "Invalid request data"
	ErrFailedFetchStats    = "Failed to fetch user stats"
	ErrFailedFetchStreak   = "Failed to fetch streak"
	ErrFailedFetchHistory  = "Failed to fetch history"
	ErrFailedUpdateProfile = "Failed to update profile"
	ErrFailedUpdateAvatar  = "Failed to update avatar"
)

// UpdateProfileRequest model for renaming the caller
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateAvatarRequest model for switching avatar style
type UpdateAvatarRequest struct {
	AvatarStyle string `json:"avatarStyle" binding:"required"`
}
