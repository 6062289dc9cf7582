package handler

import (
	"net/http"

	"github.com/acadrec/acadrec-backend/internal/middleware"
	"github.com/acadrec/acadrec-backend/internal/model"
	"github.com/acadrec/acadrec-backend/internal/response"
	"github.com/acadrec/acadrec-backend/internal/service"
	"github.com/acadrec/acadrec-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	studentService *service.StudentService
	teacherService *service.TeacherService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *service.AuthService,
	studentService *service.StudentService,
	teacherService *service.TeacherService,
) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		studentService: studentService,
		teacherService: teacherService,
	}
}

// StudentLogin godoc
// POST /auth/student/login
// Validates email + password and returns a JWT with role "student".
// The error body never reveals whether the email exists.
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req model.StudentLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(student.PasswordHash, req.Password); err != nil {
		log.Debug().Str("email", req.Email).Msg("student login rejected")
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(student.ID, student.Email, model.RoleStudent)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"access_token": token})
}

// TeacherLogin godoc
// POST /auth/teacher/login
// Validates email + password and returns a JWT carrying the stored role
// (teacher or admin).
func (h *AuthHandler) TeacherLogin(c *gin.Context) {
	var req model.TeacherLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.teacherService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(teacher.PasswordHash, req.Password); err != nil {
		log.Debug().Str("email", req.Email).Msg("teacher login rejected")
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(teacher.ID, teacher.Email, teacher.Role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"access_token": token})
}

// Me godoc
// GET /auth/me
// Returns the profile of the authenticated principal, student or teacher.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	switch claims.Role {
	case model.RoleStudent:
		student, err := h.studentService.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			failFromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"student": student})
	case model.RoleTeacher, model.RoleAdmin:
		teacher, err := h.teacherService.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			failFromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
	default:
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
	}
}
