package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PropertyID uint      `gorm:"not null;uniqueIndex:idx_reviews_user_property,priority:2;index" json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property,omitempty"`

	UserID uint  `gorm:"not null;uniqueIndex:idx_reviews_user_property,priority:1" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	// the confirmed stay that made the review possible
	BookingID uint     `gorm:"not null;index" json:"booking_id"`
	Booking   *Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "property_reviews"
}
