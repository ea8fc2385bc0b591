package database

import (
	"gorm.io/gorm"
)

// Paginate applies page-based pagination to a GORM query. Page and pageSize
// of zero or less leave the query unpaged.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 || pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
