package models

import "time"

// Appointment dates are free-form strings, matching the API contract rather
// than time.Time: callers submit and read back exactly what they sent.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title       string   `gorm:"size:255" json:"title"`
	Details     string   `gorm:"type:text" json:"details"`
	RequestDate string   `gorm:"size:100" json:"request_date"`
	AppTime     string   `gorm:"size:100" json:"app_time"`
	RequestedOn string   `gorm:"size:100" json:"requested_on"`
	Notes       []string `gorm:"serializer:json" json:"notes"`

	UserID   string `gorm:"size:36;index" json:"user_id"`
	ClientID string `gorm:"size:36;index" json:"client_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
