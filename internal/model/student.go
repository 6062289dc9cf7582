package model

import "time"

// Student represents a student account.
type Student struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentLoginRequest is the payload for student authentication.
type StudentLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=12,max=128"`
}

// RegisterStudentRequest is the payload for the public student registration.
type RegisterStudentRequest struct {
	FirstName       string `json:"first_name" binding:"required,min=1,max=100"`
	LastName        string `json:"last_name" binding:"required,min=1,max=100"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Password        string `json:"password" binding:"required,min=12,max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// UpdateStudentRequest is the payload for updating a student's profile.
// Password changes go through the dedicated password endpoint.
type UpdateStudentRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=255"`
}

// ChangePasswordRequest is the payload for student and teacher password
// changes. CurrentPassword is verified against the stored hash unless an
// admin is rotating someone else's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"omitempty,max=128"`
	NewPassword     string `json:"new_password" binding:"required,min=12,max=128"`
}

// EnrollRequest is the payload for enrolling the path student in a course.
type EnrollRequest struct {
	CourseID int `json:"course_id" binding:"required,min=1"`
}
