package models

import "time"

var ImageTypes = []string{
	"living_room",
	"bedroom",
	"kitchen",
	"bathroom",
	"exterior",
	"view",
	"dining_area",
	"other",
}

type PropertyImage struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PropertyID uint `gorm:"not null;index" json:"property_id"`

	ImageURL  string `gorm:"size:512;not null" json:"image_url"`
	ObjectKey string `gorm:"size:255;not null" json:"-"`
	ImageType string `gorm:"size:20;not null;default:'other'" json:"image_type"`
	IsPrimary bool   `gorm:"default:false" json:"is_primary"`
	Caption   string `gorm:"size:255" json:"caption"`

	CreatedAt time.Time `json:"upload_date"`
}
