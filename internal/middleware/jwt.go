package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/acadrec/acadrec-backend/internal/response"
	"github.com/acadrec/acadrec-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// ContextKeyClaims is the Gin context key for verified JWT claims.
	ContextKeyClaims = "claims"
)

// RequireAuth validates the bearer token from the Authorization header and
// stores the claims in the context. Missing, malformed and expired tokens
// all produce the same 401 body; the distinction is only logged.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				log.Debug().Str("path", c.FullPath()).Msg("rejected expired token")
			} else {
				log.Debug().Str("path", c.FullPath()).Msg("rejected invalid token")
			}
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the verified JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
