package models

import "time"

type Invoice struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	DateSent string   `gorm:"size:100" json:"date_sent"`
	Scope    []string `gorm:"serializer:json" json:"scope"`
	Total    string   `gorm:"size:50" json:"total"`
	Notes    []string `gorm:"serializer:json" json:"notes"`

	JobID    string `gorm:"size:36;index" json:"job_id"`
	ClientID string `gorm:"size:36;index" json:"client_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
