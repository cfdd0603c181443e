package models

import "time"

type Amenity struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Icon string `gorm:"size:100" json:"icon"`
}

type Policy struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:150;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	ValidUntil  *time.Time `json:"valid_until"`
}
