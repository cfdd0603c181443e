package models

import "time"

type Location struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Country  string `gorm:"size:100;not null" json:"country"`
	Province string `gorm:"size:100;not null" json:"province"`
	City     string `gorm:"size:100;not null" json:"city"`
	Address  string `gorm:"size:255;not null" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
