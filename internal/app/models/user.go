package models

// User is an account that can sign in to the dashboard
type User struct {
	ID           int64  `json:"id" example:"1"`
	Username     string `json:"username" example:"john.doe"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	Role         Role   `json:"role" example:"faculty"`
	Name         string `json:"name" example:"Dr. John Doe"`
	Department   string `json:"department" example:"Computer Science"`
	Email        string `json:"email" example:"john.doe@university.edu"`
}
