package model

import "time"

// Course represents a course offering. TeacherID is nil until an admin
// assigns a teacher.
type Course struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Credits   int       `json:"credits"`
	TeacherID *int      `json:"teacher_id"`
	Teacher   *Teacher  `json:"teacher,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Level   string `json:"level" binding:"required,min=1,max=20"`
	Credits int    `json:"credits" binding:"required,min=1,max=20"`
}

// UpdateCourseRequest is the payload for updating a course.
type UpdateCourseRequest struct {
	Name    string `json:"name" binding:"omitempty,min=1,max=200"`
	Level   string `json:"level" binding:"omitempty,min=1,max=20"`
	Credits int    `json:"credits" binding:"omitempty,min=1,max=20"`
}
