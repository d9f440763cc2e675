package models

import "time"

// Gender represents a student's registered gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// StudentStatus represents the enrollment status of a student
type StudentStatus string

const (
	StudentStatusActive      StudentStatus = "active"
	StudentStatusGraduated   StudentStatus = "graduated"
	StudentStatusTransferred StudentStatus = "transferred"
	StudentStatusDropped     StudentStatus = "dropped"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID                int64         `json:"id" db:"id" example:"1"`                              // Unique identifier for the student record
	NISN              string        `json:"nisn" db:"nisn" example:"0051234567"`                 // National student number, unique
	Name              string        `json:"name" db:"name" example:"Budi Santoso"`               // Student's full name
	Gender            Gender        `json:"gender" db:"gender" example:"male"`                   // Registered gender
	BirthDate         *time.Time    `json:"birthDate,omitempty" db:"birth_date"`                 // Date of birth (nullable)
	Birthplace        *string       `json:"birthplace,omitempty" db:"birthplace"`                // Place of birth (nullable)
	Religion          *string       `json:"religion,omitempty" db:"religion"`                    // Registered religion (nullable)
	Class             string        `json:"class" db:"class" example:"7A"`                       // Current class name
	EntryYear         int           `json:"entryYear" db:"entry_year" example:"2023"`            // Year the student entered the school
	GraduationYear    *int          `json:"graduationYear,omitempty" db:"graduation_year"`       // Year of graduation (nullable)
	Status            StudentStatus `json:"status" db:"status" example:"active"`                 // Enrollment status
	HomeroomTeacherID *int64        `json:"homeroomTeacherId,omitempty" db:"homeroom_teacher_id"` // Homeroom teacher staff ID (nullable)
	Photo             *string       `json:"photo,omitempty" db:"photo"`                          // Stored photo reference, local path or full URL (nullable)
	ParentName        *string       `json:"parentName,omitempty" db:"parent_name"`               // Parent or guardian name (nullable)
	ParentPhone       *string       `json:"parentPhone,omitempty" db:"parent_phone"`             // Parent or guardian phone number (nullable)
	Address           *string       `json:"address,omitempty" db:"address"`                      // Home address (nullable)
	Notes             *string       `json:"notes,omitempty" db:"notes"`                          // Free-form administrative notes (nullable)
	CreatedAt         time.Time     `json:"createdAt" db:"created_at"`                           // Timestamp when the record was created
	UpdatedAt         time.Time     `json:"updatedAt" db:"updated_at"`                           // Timestamp when the record was last updated

	// Relations (populated when needed)
	HomeroomTeacher *Staff `json:"homeroomTeacher,omitempty"` // Assigned homeroom teacher
}
