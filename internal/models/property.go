package models

import "time"

const (
	PropertyStatusActive      = "active"
	PropertyStatusInactive    = "inactive"
	PropertyStatusPending     = "pending"
	PropertyStatusMaintenance = "maintenance"
)

var PropertyStatuses = []string{
	PropertyStatusActive,
	PropertyStatusInactive,
	PropertyStatusPending,
	PropertyStatusMaintenance,
}

type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// host
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"host,omitempty"`

	LocationID uint      `gorm:"not null" json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"location,omitempty"`

	Name        string  `gorm:"size:150;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `gorm:"type:decimal(10,2);not null" json:"base_price"`
	MaxGuests   int     `gorm:"not null;default:1" json:"max_guests"`
	Type        string  `gorm:"size:20;not null;default:'other'" json:"type"`
	Status      string  `gorm:"size:20;not null;default:'pending';index" json:"status"`

	Images    []PropertyImage `json:"images,omitempty"`
	Amenities []Amenity       `gorm:"many2many:property_amenities;" json:"amenities,omitempty"`
	Policies  []Policy        `gorm:"many2many:property_policies;" json:"policies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
