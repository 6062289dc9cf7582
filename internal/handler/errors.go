package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/acadrec/acadrec-backend/internal/repository"
	"github.com/acadrec/acadrec-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// failFromError maps repository sentinels to HTTP responses. Anything
// unrecognized is logged and reported as an internal error.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateStudentEmail),
		errors.Is(err, repository.ErrDuplicateTeacherEmail):
		response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
	case errors.Is(err, repository.ErrDuplicateCourse):
		response.Fail(c, http.StatusConflict, response.ErrCourseExists)
	case errors.Is(err, repository.ErrDuplicateEnrollment):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled service error")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// pathID parses an integer path parameter, responding 400 on failure.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
