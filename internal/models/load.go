package models

import (
	"time"
)

type Load struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Item      string    `gorm:"type:varchar(255);not null" json:"item"`
	Volume    int       `gorm:"not null" json:"volume"`
	Weight    int       `gorm:"not null" json:"weight"`
	BoatID    *uint64   `gorm:"index" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Boat *Boat `gorm:"foreignKey:BoatID" json:"boat,omitempty"`
}
