package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/auth"
	"github.com/harborview/marina-api/internal/constants"
	apierrors "github.com/harborview/marina-api/internal/errors"
	"github.com/harborview/marina-api/internal/repository"
)

// RequireToken validates the bearer JWT and stores its subject claim in
// the context. Each failure state answers 401 with its own message.
func RequireToken(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Authorization header is missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 {
			apierrors.Unauthorized(c, "Invalid header: Unable to parse authentication")
			c.Abort()
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			apierrors.Unauthorized(c, verifyFailureMessage(err))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySubject, claims.Subject)
		c.Next()
	}
}

func verifyFailureMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidHeader):
		return "Invalid header: Use an RS256 signed JWT Access Token"
	case errors.Is(err, auth.ErrNoMatchingKey):
		return "No RSA key in JWKS"
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token is expired"
	case errors.Is(err, auth.ErrInvalidClaims):
		return "Invalid claims: Please check the audience and issuer"
	default:
		return "Invalid header: Unable to parse authentication"
	}
}

// ResolveUser maps the token subject set by RequireToken to an internal
// user id, once per request. A valid token whose subject has no user
// record cannot own anything, so the answer is 403.
func ResolveUser(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, ok := GetSubject(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := userRepo.FindBySub(sub)
		if err != nil {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetSubject retrieves the verified token subject from context
func GetSubject(c *gin.Context) (string, bool) {
	sub, exists := c.Get(constants.ContextKeySubject)
	if !exists {
		return "", false
	}
	s, ok := sub.(string)
	return s, ok
}

// GetUserID retrieves the resolved user id from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
