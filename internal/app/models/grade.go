package models

import "time"

// StudentGrade defines one recorded score based on the 'student_grades' table
type StudentGrade struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	SubjectID    int64     `json:"subjectId" db:"subject_id"`
	Semester     string    `json:"semester" db:"semester" example:"2024-2025-1"` // Academic year plus term
	Score        float64   `json:"score" db:"score" example:"85.5"`
	AssessmentAt time.Time `json:"assessmentAt" db:"assessment_at"` // Date the score was recorded
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Subject *Subject `json:"subject,omitempty"`
}
