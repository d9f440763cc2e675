package dto

import (
	"time"

	"github.com/sekolahku/sekolahku/internal/app/models"
)

// Wire formats for dates and timestamps in JSON payloads
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)

// CreateStudentRequest represents the payload for registering a student.
// It binds from multipart form data because the photo rides along in the
// same request.
type CreateStudentRequest struct {
	NISN           string  `form:"nisn" json:"nisn" binding:"required" example:"0051234567"`
	Name           string  `form:"name" json:"name" binding:"required" example:"Budi Santoso"`
	Gender         string  `form:"gender" json:"gender" binding:"required,oneof=male female" example:"male"`
	BirthDate      string  `form:"birthDate" json:"birthDate" binding:"omitempty,datetime=2006-01-02" example:"2010-05-17"`
	Birthplace     *string `form:"birthplace" json:"birthplace,omitempty"`
	Religion       *string `form:"religion" json:"religion,omitempty"`
	Class          string  `form:"class" json:"class" binding:"omitempty" example:"7A"`
	EntryYear      int     `form:"entryYear" json:"entryYear" binding:"required,min=2000,max=2100" example:"2023"`
	GraduationYear *int    `form:"graduationYear" json:"graduationYear,omitempty" binding:"omitempty,min=2000,max=2100"`
	Status         string  `form:"status" json:"status" binding:"omitempty,oneof=active graduated transferred dropped" example:"active"`
	ParentName     *string `form:"parentName" json:"parentName,omitempty"`
	ParentPhone    *string `form:"parentPhone" json:"parentPhone,omitempty"`
	Address        *string `form:"address" json:"address,omitempty"`
	Notes          *string `form:"notes" json:"notes,omitempty"`
}

// UpdateStudentRequest represents the payload for updating a student.
// All fields are optional; omitted fields keep their current value.
type UpdateStudentRequest struct {
	Name           *string `form:"name" json:"name,omitempty"`
	Gender         *string `form:"gender" json:"gender,omitempty" binding:"omitempty,oneof=male female"`
	BirthDate      *string `form:"birthDate" json:"birthDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Birthplace     *string `form:"birthplace" json:"birthplace,omitempty"`
	Religion       *string `form:"religion" json:"religion,omitempty"`
	Class          *string `form:"class" json:"class,omitempty"`
	EntryYear      *int    `form:"entryYear" json:"entryYear,omitempty" binding:"omitempty,min=2000,max=2100"`
	GraduationYear *int    `form:"graduationYear" json:"graduationYear,omitempty" binding:"omitempty,min=2000,max=2100"`
	Status         *string `form:"status" json:"status,omitempty" binding:"omitempty,oneof=active graduated transferred dropped"`
	ParentName     *string `form:"parentName" json:"parentName,omitempty"`
	ParentPhone    *string `form:"parentPhone" json:"parentPhone,omitempty"`
	Address        *string `form:"address" json:"address,omitempty"`
	Notes          *string `form:"notes" json:"notes,omitempty"`
	RemovePhoto    bool    `form:"removePhoto" json:"removePhoto,omitempty"` // Delete the stored photo without replacing it
}

// StudentResponse is the flat student representation used in lists
type StudentResponse struct {
	ID             int64   `json:"id" example:"1"`
	NISN           string  `json:"nisn" example:"0051234567"`
	Name           string  `json:"name" example:"Budi Santoso"`
	Gender         string  `json:"gender" example:"male"`
	BirthDate      *string `json:"birthDate,omitempty" example:"2010-05-17"`
	Birthplace     *string `json:"birthplace,omitempty"`
	Religion       *string `json:"religion,omitempty"`
	Class          string  `json:"class" example:"7A"`
	EntryYear      int     `json:"entryYear" example:"2023"`
	GraduationYear *int    `json:"graduationYear,omitempty"`
	Status         string  `json:"status" example:"active"`
	PhotoURL       *string `json:"photoUrl,omitempty"`
	ParentName     *string `json:"parentName,omitempty"`
	ParentPhone    *string `json:"parentPhone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt" example:"2024-01-01 10:00"`
	UpdatedAt      string  `json:"updatedAt" example:"2024-01-02 15:30"`
}

// NewStudentResponse maps a student row to its API shape. photoURL is the
// already resolved photo location, nil when the student has no photo.
func NewStudentResponse(s *models.Student, photoURL *string) StudentResponse {
	resp := StudentResponse{
		ID:             s.ID,
		NISN:           s.NISN,
		Name:           s.Name,
		Gender:         string(s.Gender),
		Birthplace:     s.Birthplace,
		Religion:       s.Religion,
		Class:          s.Class,
		EntryYear:      s.EntryYear,
		GraduationYear: s.GraduationYear,
		Status:         string(s.Status),
		PhotoURL:       photoURL,
		ParentName:     s.ParentName,
		ParentPhone:    s.ParentPhone,
		Address:        s.Address,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:      s.UpdatedAt.Format(DateTimeFormat),
	}
	if s.BirthDate != nil {
		bd := s.BirthDate.Format(DateFormat)
		resp.BirthDate = &bd
	}
	return resp
}

// ClassStats summarizes the homeroom roster
type ClassStats struct {
	TotalStudents int      `json:"totalStudents" example:"28"`
	MaleCount     int      `json:"maleCount" example:"15"`
	FemaleCount   int      `json:"femaleCount" example:"13"`
	ActiveCount   int      `json:"activeCount" example:"27"`
	Classes       []string `json:"classes"` // Distinct class names in the roster
}

// StudentListResponse is the homeroom roster with its statistics
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Stats    ClassStats        `json:"stats"`
}

// PagedStudentListResponse is the admin student list with pagination
type PagedStudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StudentDetailResponse is the full student view model with every record
// collection attached
type StudentDetailResponse struct {
	Student                StudentResponse                 `json:"student"`
	HomeroomTeacher        *StaffBrief                     `json:"homeroomTeacher,omitempty"`
	PositiveNotes          []PositiveNoteResponse          `json:"positiveNotes"`
	DisciplinaryRecords    []DisciplinaryRecordResponse    `json:"disciplinaryRecords"`
	ExtracurricularHistory []ExtracurricularHistoryResponse `json:"extracurricularHistory"`
	Documents              []DocumentResponse              `json:"documents"`
	Achievements           []AchievementResponse           `json:"achievements"`
}

// StaffBrief is the short staff representation embedded in other payloads
type StaffBrief struct {
	ID       int64  `json:"id" example:"2"`
	Name     string `json:"name" example:"Siti Rahma"`
	Position string `json:"position" example:"Guru Matematika"`
}

// BehaviorSummaryResponse reports the derived behavior standing of a student
type BehaviorSummaryResponse struct {
	StudentID         int64                        `json:"studentId" example:"1"`
	BehaviorScore     int                          `json:"behaviorScore" example:"65"` // 0-100, derived from note counts
	PositiveCount     int                          `json:"positiveCount" example:"3"`
	DisciplinaryCount int                          `json:"disciplinaryCount" example:"1"`
	RecentNotes       []PositiveNoteResponse       `json:"recentNotes"`
	RecentIncidents   []DisciplinaryRecordResponse `json:"recentIncidents"`
}

// SubjectAverage is one subject's grade aggregate
type SubjectAverage struct {
	SubjectID   int64   `json:"subjectId" example:"3"`
	SubjectName string  `json:"subjectName" example:"Matematika"`
	Average     float64 `json:"average" example:"85.5"`
	GradeCount  int     `json:"gradeCount" example:"4"`
}

// AcademicSummaryResponse reports grade aggregates for a student
type AcademicSummaryResponse struct {
	StudentID      int64            `json:"studentId" example:"1"`
	OverallAverage float64          `json:"overallAverage" example:"82.3"`
	GradeCount     int              `json:"gradeCount" example:"12"`
	Subjects       []SubjectAverage `json:"subjects"`
}

// ParseDate parses a wire-format date string. The zero time and a nil error
// are returned for the empty string.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateFormat, s)
}
