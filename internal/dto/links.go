package dto

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// RequestBase derives the base URL for self links from the incoming
// request, unless a configured override is set.
func RequestBase(c *gin.Context, override string) string {
	if override != "" {
		return override
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

func boatSelfLink(base string, id uint64) string {
	return fmt.Sprintf("%s/boats/%d", base, id)
}

func loadSelfLink(base string, id uint64) string {
	return fmt.Sprintf("%s/loads/%d", base, id)
}
