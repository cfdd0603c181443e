package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PropertyID uint      `gorm:"not null;index:idx_bookings_property_range,priority:1" json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"property,omitempty"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`

	CheckIn  time.Time `gorm:"not null;index:idx_bookings_property_range,priority:2" json:"check_in"`
	CheckOut time.Time `gorm:"not null;index:idx_bookings_property_range,priority:3" json:"check_out"`
	Guests   int       `gorm:"not null" json:"guests"`

	Status        string  `gorm:"size:20;not null;default:'confirmed';index" json:"status"`
	PaymentStatus string  `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	TotalPrice    float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`

	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
