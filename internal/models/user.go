package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account. Blogs and comments are owned
// exclusively by their author and are removed with the account.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"size:80;uniqueIndex"`
	Email          string    `json:"email" gorm:"size:120;uniqueIndex"` // stored lowercase
	FirstName      string    `json:"first_name" gorm:"size:50"`
	LastName       string    `json:"last_name" gorm:"size:50"`
	PasswordHash   string    `json:"-" gorm:"size:255"`
	Bio            string    `json:"bio,omitempty" gorm:"type:text"`
	ProfilePicture string    `json:"profile_picture" gorm:"size:255;default:default.jpg"`
	DateJoined     time.Time `json:"date_joined" gorm:"autoCreateTime"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
}

// FullName returns the display name used in comment payloads.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserCompact is the author summary embedded in blog and comment payloads
type UserCompact struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName(),
		ProfilePicture: u.ProfilePicture,
	}
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=80"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest defines the request body for changing the password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// UpdateProfileRequest defines the form fields for editing a profile.
// The profile picture, if any, is read from the multipart file part.
type UpdateProfileRequest struct {
	Username  string `json:"username" form:"username" validate:"required,min=3,max=80"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	FirstName string `json:"first_name" form:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,min=1,max=50"`
	Bio       string `json:"bio" form:"bio" validate:"max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
