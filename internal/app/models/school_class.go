package models

import "time"

// SchoolClass defines the class model based on the 'school_classes' table
type SchoolClass struct {
	ID                int64     `json:"id" db:"id" example:"1"`                               // Unique identifier for the class
	Name              string    `json:"name" db:"name" example:"7A"`                          // Class name, unique
	Level             int       `json:"level" db:"level" example:"7"`                         // Grade level
	Capacity          int       `json:"capacity" db:"capacity" example:"32"`                  // Maximum number of students
	HomeroomTeacherID *int64    `json:"homeroomTeacherId,omitempty" db:"homeroom_teacher_id"` // Assigned homeroom teacher staff ID (nullable)
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	HomeroomTeacher *Staff `json:"homeroomTeacher,omitempty"`
}
