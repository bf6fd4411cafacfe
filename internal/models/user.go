package models

import (
	"time"
)

// User is created lazily on the first successful login callback for a
// subject that has never been seen before. Sub is the identity
// provider's stable subject identifier and is never serialized to
// clients.
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Sub       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
