package dto

import (
	"time"

	"github.com/yigit/schedulocity/internal/app/auth"
	"github.com/yigit/schedulocity/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"john.doe"`
	Password string `json:"password" binding:"required" example:"faculty123"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"1800"`
}

// UserResponse represents a user without credentials
type UserResponse struct {
	ID         int64       `json:"id" example:"1"`
	Username   string      `json:"username" example:"john.doe"`
	Role       models.Role `json:"role" example:"faculty"`
	Name       string      `json:"name" example:"Dr. John Doe"`
	Department string      `json:"department" example:"Computer Science"`
	Email      string      `json:"email" example:"john.doe@university.edu"`
}

// NewUserResponse strips credentials from a user
func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		Name:       u.Name,
		Department: u.Department,
		Email:      u.Email,
	}
}

// SessionResponse is the client-visible session state
type SessionResponse struct {
	ID               string         `json:"id"`
	User             UserResponse   `json:"user"`
	ActiveView       models.ViewID  `json:"activeView" example:"dashboard"`
	SidebarCollapsed bool           `json:"sidebarCollapsed"`
	Navigation       []auth.NavItem `json:"navigation"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Session SessionResponse `json:"session"`
}

// NavigateRequest selects a view
type NavigateRequest struct {
	View models.ViewID `json:"view" binding:"required" example:"leave-requests"`
}

// SidebarRequest sets the sidebar state. A missing value toggles it.
type SidebarRequest struct {
	Collapsed *bool `json:"collapsed"`
}
