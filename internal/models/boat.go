package models

import (
	"time"
)

type Boat struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Type      string    `gorm:"type:varchar(255);not null" json:"type"`
	Length    int       `gorm:"not null" json:"length"`
	OwnerID   uint64    `gorm:"not null;index" json:"owner"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Loads []Load `gorm:"foreignKey:BoatID" json:"loads,omitempty"`
}
