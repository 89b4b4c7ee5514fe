package models

import "time"

type Job struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title       string   `gorm:"size:255" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Scope       []string `gorm:"serializer:json" json:"scope"`
	Total       string   `gorm:"size:50" json:"total"`
	Notes       []string `gorm:"serializer:json" json:"notes"`

	QuoteID  string `gorm:"size:36;index" json:"quote_id"`
	ClientID string `gorm:"size:36;index" json:"client_id"`
	UserID   string `gorm:"size:36;index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
