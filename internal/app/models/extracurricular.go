package models

import "time"

// Extracurricular defines an activity based on the 'extracurriculars' table
type Extracurricular struct {
	ID          int64     `json:"id" db:"id" example:"1"`              // Unique identifier for the activity
	Name        string    `json:"name" db:"name" example:"Pramuka"`    // Activity name, unique
	Description *string   `json:"description,omitempty" db:"description"` // Activity description (nullable)
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ExtracurricularHistory defines a student's participation period based on
// the 'extracurricular_histories' table. EndDate, when set, must be strictly
// after StartDate.
type ExtracurricularHistory struct {
	ID                int64      `json:"id" db:"id" example:"1"`
	StudentID         int64      `json:"studentId" db:"student_id" example:"1"`
	ExtracurricularID int64      `json:"extracurricularId" db:"extracurricular_id" example:"3"`
	AcademicYear      string     `json:"academicYear" db:"academic_year" example:"2024-2025"` // Formatted YYYY-YYYY
	Role              *string    `json:"role,omitempty" db:"role"`                            // Role within the activity (nullable)
	StartDate         time.Time  `json:"startDate" db:"start_date"`
	EndDate           *time.Time `json:"endDate,omitempty" db:"end_date"` // Participation end (nullable, after StartDate)
	PerformanceNotes  *string    `json:"performanceNotes,omitempty" db:"performance_notes"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Extracurricular *Extracurricular `json:"extracurricular,omitempty"`
}
