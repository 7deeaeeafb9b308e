package dtos

import "time"

type GuestSession struct {
	Token     string    `json:"token"`
	GuestID   string    `json:"guest_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	Type      string    `json:"type"`
}

type GuestSessionInfo struct {
	GuestID      string    `json:"guest_id"`
	Type         string    `json:"type"`
	IssuedAt     time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	LastActivity time.Time `json:"last_activity"`
}
