package models

import "time"

type Address struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Street string `gorm:"size:255" json:"street"`
	City   string `gorm:"size:100" json:"city"`
	State  string `gorm:"size:100" json:"state"`
	Zip    string `gorm:"size:20" json:"zip"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
