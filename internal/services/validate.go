package services

import (
	"errors"

	"github.com/harborview/marina-api/internal/constants"
)

// ErrInvalidProperty is returned whenever a submitted field is missing,
// empty, too long, or not a positive integer. All field validation
// failures collapse into this single client-facing message.
var ErrInvalidProperty = errors.New("At least one required property is invalid or missing")

// validString reports whether s is a usable string property: non-empty
// and within the column length bound.
func validString(s string) bool {
	return s != "" && len(s) <= constants.MaxStringLen
}

// validPosInt reports whether n is a usable integer property.
func validPosInt(n int) bool {
	return n > 0
}
