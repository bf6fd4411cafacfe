package database

import (
	"gorm.io/gorm"

	"github.com/harborview/marina-api/internal/utils"
)

// Paginate applies a limit/offset window to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}
