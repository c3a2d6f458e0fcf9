package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a participant in the daily challenge tracker
type User struct {
	ID                  string     `gorm:"type:uuid;primary_key" json:"id"`
	Name                string     `gorm:"type:varchar(100);not null" json:"name"`
	Email               string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Role                string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	TotalProblemsSolved int        `gorm:"not null;default:0;column:total_problems_solved" json:"totalProblemsSolved"`
	EasySolved          int        `gorm:"not null;default:0;column:easy_solved" json:"easySolved"`
	MediumSolved        int        `gorm:"not null;default:0;column:medium_solved" json:"mediumSolved"`
	HardSolved          int        `gorm:"not null;default:0;column:hard_solved" json:"hardSolved"`
	AvatarStyle         string     `gorm:"type:varchar(50);not null;default:'bottts'" json:"avatarStyle"`
	Avatar              string     `gorm:"type:varchar(512)" json:"avatar"`
	IsEligibleForAdmin  bool       `gorm:"not null;default:false;column:is_eligible_for_admin" json:"isEligibleForAdmin"`
	IsAdminToday        bool       `gorm:"not null;default:false;column:is_admin_today" json:"isAdminToday"`
	LastAdminDate       *time.Time `gorm:"column:last_admin_date" json:"lastAdminDate"`
	Points              int        `gorm:"not null;default:0" json:"points"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
