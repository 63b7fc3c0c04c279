package model

// User represents a staff member who can log into the clinic.
// Email is the canonical login credential and is unique across users.
type User struct {
	Base
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// RegisterRequest represents user registration parameters
type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email,max=120"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=100"`
}

// LoginRequest represents login parameters
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}
