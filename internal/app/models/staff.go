package models

import "time"

// Staff defines the staff model based on the 'staff' table
type Staff struct {
	ID            int64     `json:"id" db:"id" example:"1"`                          // Unique identifier for the staff record
	NIP           string    `json:"nip" db:"nip" example:"198501012010011001"`       // Employee identification number, unique
	Name          string    `json:"name" db:"name" example:"Siti Rahma"`             // Staff member's full name
	Position      string    `json:"position" db:"position" example:"Guru Matematika"` // Job position
	Division      *string   `json:"division,omitempty" db:"division"`                // Organizational division (nullable)
	UserID        *int64    `json:"userId,omitempty" db:"user_id"`                   // Linked user account ID (nullable)
	HomeroomClass *string   `json:"homeroomClass,omitempty" db:"homeroom_class"`     // Class this staff member is homeroom teacher of (nullable)
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Associated user account
}
