package model

import "time"

// Enrollment links a student to a course. Grade is nil until recorded.
type Enrollment struct {
	ID         int       `json:"id"`
	StudentID  int       `json:"student_id"`
	CourseID   int       `json:"course_id"`
	Grade      *float64  `json:"grade"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
