package middleware

import (
	"net/http"
	"strconv"

	"github.com/acadrec/acadrec-backend/internal/policy"
	"github.com/acadrec/acadrec-backend/internal/response"
	"github.com/gin-gonic/gin"
)

// Authorize enforces a role-only requirement. Must run after RequireAuth.
func Authorize(req policy.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if !req.Allows(claims.Principal(), 0) {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		c.Next()
	}
}

// AuthorizeOwner enforces a requirement whose ownership clause compares the
// principal id against the integer path parameter named ownerParam.
// Must run after RequireAuth.
func AuthorizeOwner(req policy.Requirement, ownerParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		ownerID, err := strconv.Atoi(c.Param(ownerParam))
		if err != nil {
			response.AbortFail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}

		if !req.Allows(claims.Principal(), ownerID) {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		c.Next()
	}
}
