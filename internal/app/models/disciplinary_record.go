package models

import "time"

// DisciplinarySeverity represents how serious an incident was
type DisciplinarySeverity string

const (
	SeverityMinor    DisciplinarySeverity = "minor"
	SeverityModerate DisciplinarySeverity = "moderate"
	SeveritySerious  DisciplinarySeverity = "serious"
)

// DisciplinaryRecord defines an incident record based on the 'disciplinary_records' table.
// The API exposes the description and date columns as incidentDescription and
// incidentDate; the DTO layer maps between the two namings.
type DisciplinaryRecord struct {
	ID           int64                `json:"id" db:"id" example:"1"`                // Unique identifier for the record
	StudentID    int64                `json:"studentId" db:"student_id" example:"1"` // Student the record belongs to
	StaffID      int64                `json:"staffId" db:"staff_id" example:"2"`     // Staff member who recorded the incident
	IncidentType string               `json:"incidentType" db:"incident_type" example:"late_arrival"` // Incident classification
	Description  string               `json:"description" db:"description"`          // What happened
	ActionTaken  *string              `json:"actionTaken,omitempty" db:"action_taken"` // Follow-up action (nullable)
	Severity     DisciplinarySeverity `json:"severity" db:"severity" example:"minor"` // Incident severity
	Date         time.Time            `json:"date" db:"date"`                        // Date of the incident
	CreatedAt    time.Time            `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time            `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Staff *Staff `json:"staff,omitempty"` // Recording staff member
}
