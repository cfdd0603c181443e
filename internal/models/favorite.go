package models

import "time"

type Favorite struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null;uniqueIndex:idx_favorites_user_property,priority:1" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PropertyID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_property,priority:2" json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
