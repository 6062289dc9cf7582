package model

// UserRole identifies what a principal is allowed to do.
// Students always carry RoleStudent; a teacher record carries either
// RoleTeacher or RoleAdmin.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)
