package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/constants"
	apierrors "github.com/harborview/marina-api/internal/errors"
)

// RequireJSONBody rejects requests whose body is not declared as JSON.
func RequireJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != constants.MIMEJSON {
			apierrors.UnsupportedMediaType(c, "Request content is not json")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireJSONAccept rejects clients that will not accept a JSON
// response. An absent Accept header means anything is acceptable.
func RequireJSONAccept() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsJSON(c.GetHeader("Accept")) {
			apierrors.NotAcceptable(c, "Must accept json response")
			c.Abort()
			return
		}
		c.Next()
	}
}

func acceptsJSON(accept string) bool {
	if accept == "" {
		return true
	}

	for _, part := range strings.Split(accept, ",") {
		mediaRange := strings.TrimSpace(part)
		if i := strings.Index(mediaRange, ";"); i >= 0 {
			mediaRange = strings.TrimSpace(mediaRange[:i])
		}
		switch mediaRange {
		case constants.MIMEJSON, "application/*", "*/*":
			return true
		}
	}

	return false
}
