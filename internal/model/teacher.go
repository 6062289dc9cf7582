package model

import "time"

// Teacher represents a teacher or admin account. The Role field
// distinguishes the two.
type Teacher struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Title        string    `json:"title"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeacherLoginRequest is the payload for teacher/admin authentication.
type TeacherLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=12,max=128"`
}

// CreateTeacherRequest is the payload for creating a teacher account.
type CreateTeacherRequest struct {
	FirstName       string   `json:"first_name" binding:"required,min=1,max=100"`
	LastName        string   `json:"last_name" binding:"required,min=1,max=100"`
	Title           string   `json:"title" binding:"required,min=1,max=100"`
	Email           string   `json:"email" binding:"required,email,max=255"`
	Password        string   `json:"password" binding:"required,min=12,max=128"`
	ConfirmPassword string   `json:"confirm_password" binding:"required,eqfield=Password"`
	Role            UserRole `json:"role" binding:"omitempty,oneof=teacher admin"`
}

// UpdateTeacherRequest is the payload for updating a teacher's profile.
type UpdateTeacherRequest struct {
	FirstName string   `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  string   `json:"last_name" binding:"omitempty,min=1,max=100"`
	Title     string   `json:"title" binding:"omitempty,min=1,max=100"`
	Email     string   `json:"email" binding:"omitempty,email,max=255"`
	Role      UserRole `json:"role" binding:"omitempty,oneof=teacher admin"`
}
