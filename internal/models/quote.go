package models

import "time"

type Quote struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Description string   `gorm:"type:text" json:"description"`
	Scope       []string `gorm:"serializer:json" json:"scope"`
	Total       string   `gorm:"size:50" json:"total"` // decimal-as-string
	Notes       string   `gorm:"type:text" json:"notes"`

	ClientID string `gorm:"size:36;index" json:"client_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
