package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harborview/marina-api/internal/constants"
)

// PaginationParams holds the limit/offset window of a list request.
type PaginationParams struct {
	Limit  int
	Offset int
}

// GetPaginationParams extracts and clamps the limit and offset query
// parameters. The default limit differs per resource; the cap does not.
func GetPaginationParams(c *gin.Context, defaultLimit int) PaginationParams {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > constants.MaxPageSize {
		limit = defaultLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}

// NextURL builds the link to the following page, or "" when the current
// window already reaches the end of the result set.
func NextURL(base string, params PaginationParams, total int64) string {
	if int64(params.Offset+params.Limit) >= total {
		return ""
	}
	return fmt.Sprintf("%s?limit=%d&offset=%d", base, params.Limit, params.Offset+params.Limit)
}
