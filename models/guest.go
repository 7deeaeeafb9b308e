package models

import "time"

type Guest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	GuestID      string    `gorm:"size:64;not null;uniqueIndex" json:"guest_id"`
	IPAddress    string    `gorm:"size:64;index" json:"ip_address"`
	UserAgent    string    `gorm:"size:255" json:"user_agent"`
	LastActivity time.Time `gorm:"index" json:"last_activity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Guest) TableName() string { return "guests" }
