package models

import "time"

type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Phone string   `gorm:"size:20" json:"phone"`
	Email string   `gorm:"size:100" json:"email"`
	Tags  []string `gorm:"serializer:json" json:"tags"`

	// AddressID points at the Address record created alongside the client.
	AddressID string `gorm:"size:36" json:"address_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
