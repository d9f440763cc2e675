package models

import "time"

// PositiveNote defines a behavior commendation based on the 'positive_notes' table
type PositiveNote struct {
	ID        int64     `json:"id" db:"id" example:"1"`                   // Unique identifier for the note
	StudentID int64     `json:"studentId" db:"student_id" example:"1"`    // Student the note belongs to
	StaffID   int64     `json:"staffId" db:"staff_id" example:"2"`        // Staff member who recorded the note
	Note      string    `json:"note" db:"note" example:"Helped organize the class library"` // Note body
	Category  *string   `json:"category,omitempty" db:"category"`         // Optional note category (nullable)
	Date      time.Time `json:"date" db:"date"`                           // Date the behavior was observed
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Staff *Staff `json:"staff,omitempty"` // Recording staff member
}
