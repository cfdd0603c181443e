package models

import "time"

type Cancellation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint     `gorm:"not null;index" json:"booking_id"`
	Booking   *Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"booking,omitempty"`

	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Reason           string    `gorm:"type:text" json:"reason"`
	CancellationDate time.Time `gorm:"not null" json:"cancellation_date"`
	Status           string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
