package dto

import "github.com/sekolahku/sekolahku/internal/app/models"

// CreateStaffRequest represents the payload for registering a staff member
type CreateStaffRequest struct {
	NIP           string  `json:"nip" binding:"required" example:"198501012010011001"`
	Name          string  `json:"name" binding:"required" example:"Siti Rahma"`
	Position      string  `json:"position" binding:"required" example:"Guru Matematika"`
	Division      *string `json:"division,omitempty"`
	HomeroomClass *string `json:"homeroomClass,omitempty" example:"7A"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"` // When set, a teacher login is provisioned
	Password      *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

// UpdateStaffRequest represents the payload for updating a staff member
type UpdateStaffRequest struct {
	Name          *string `json:"name,omitempty"`
	Position      *string `json:"position,omitempty"`
	Division      *string `json:"division,omitempty"`
	HomeroomClass *string `json:"homeroomClass,omitempty"`
}

// StaffResponse is the API shape of a staff member
type StaffResponse struct {
	ID            int64   `json:"id" example:"1"`
	NIP           string  `json:"nip" example:"198501012010011001"`
	Name          string  `json:"name" example:"Siti Rahma"`
	Position      string  `json:"position" example:"Guru Matematika"`
	Division      *string `json:"division,omitempty"`
	UserID        *int64  `json:"userId,omitempty"`
	HomeroomClass *string `json:"homeroomClass,omitempty"`
	CreatedAt     string  `json:"createdAt" example:"2024-01-01 10:00"`
}

// NewStaffResponse maps a staff row to its API shape
func NewStaffResponse(s *models.Staff) StaffResponse {
	return StaffResponse{
		ID:            s.ID,
		NIP:           s.NIP,
		Name:          s.Name,
		Position:      s.Position,
		Division:      s.Division,
		UserID:        s.UserID,
		HomeroomClass: s.HomeroomClass,
		CreatedAt:     s.CreatedAt.Format(DateTimeFormat),
	}
}

// CreateClassRequest represents the payload for creating a class
type CreateClassRequest struct {
	Name              string `json:"name" binding:"required" example:"7A"`
	Level             int    `json:"level" binding:"required,min=1,max=13" example:"7"`
	Capacity          int    `json:"capacity" binding:"omitempty,min=1,max=60" example:"32"`
	HomeroomTeacherID *int64 `json:"homeroomTeacherId,omitempty"`
}

// UpdateClassRequest represents the payload for updating a class
type UpdateClassRequest struct {
	Name              *string `json:"name,omitempty"`
	Level             *int    `json:"level,omitempty" binding:"omitempty,min=1,max=13"`
	Capacity          *int    `json:"capacity,omitempty" binding:"omitempty,min=1,max=60"`
	HomeroomTeacherID *int64  `json:"homeroomTeacherId,omitempty"`
}

// ClassResponse is the API shape of a class
type ClassResponse struct {
	ID                  int64   `json:"id" example:"1"`
	Name                string  `json:"name" example:"7A"`
	Level               int     `json:"level" example:"7"`
	Capacity            int     `json:"capacity" example:"32"`
	HomeroomTeacherID   *int64  `json:"homeroomTeacherId,omitempty"`
	HomeroomTeacherName *string `json:"homeroomTeacherName,omitempty"`
	StudentCount        int     `json:"studentCount" example:"28"`
}

// CreateSubjectRequest represents the payload for creating a subject
type CreateSubjectRequest struct {
	Name        string  `json:"name" binding:"required" example:"Matematika"`
	Code        string  `json:"code" binding:"required" example:"MTK-7"`
	Description *string `json:"description,omitempty"`
}

// UpdateSubjectRequest represents the payload for updating a subject
type UpdateSubjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SubjectResponse is the flat subject representation for admin listings
type SubjectResponse struct {
	ID          int64   `json:"id" example:"3"`
	Name        string  `json:"name" example:"Matematika"`
	Code        string  `json:"code" example:"MTK-7"`
	Description *string `json:"description,omitempty"`
}

// NewSubjectResponse maps a subject row to its API shape
func NewSubjectResponse(s *models.Subject) SubjectResponse {
	return SubjectResponse{
		ID:          s.ID,
		Name:        s.Name,
		Code:        s.Code,
		Description: s.Description,
	}
}

// AssignSubjectRequest links a staff member to a subject
type AssignSubjectRequest struct {
	StaffID int64 `json:"staffId" binding:"required" example:"2"`
}

// EnrollStudentRequest links a student to a subject
type EnrollStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"1"`
}

// CreateExtracurricularRequest represents the payload for creating an activity
type CreateExtracurricularRequest struct {
	Name        string  `json:"name" binding:"required" example:"Pramuka"`
	Description *string `json:"description,omitempty"`
}

// UpdateExtracurricularRequest represents the payload for updating an activity
type UpdateExtracurricularRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ExtracurricularResponse is the API shape of an activity
type ExtracurricularResponse struct {
	ID          int64   `json:"id" example:"3"`
	Name        string  `json:"name" example:"Pramuka"`
	Description *string `json:"description,omitempty"`
}

// NewExtracurricularResponse maps an activity row to its API shape
func NewExtracurricularResponse(e *models.Extracurricular) ExtracurricularResponse {
	return ExtracurricularResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
	}
}

// CreateWorkItemRequest represents the payload for creating a work item
type CreateWorkItemRequest struct {
	Name        string  `json:"name" binding:"required" example:"Rencana Pelaksanaan Pembelajaran"`
	Description *string `json:"description,omitempty"`
}

// UpdateWorkItemRequest represents the payload for updating a work item
type UpdateWorkItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// WorkItemResponse is the API shape of a work item
type WorkItemResponse struct {
	ID          int64   `json:"id" example:"1"`
	Name        string  `json:"name" example:"Rencana Pelaksanaan Pembelajaran"`
	Description *string `json:"description,omitempty"`
}

// NewWorkItemResponse maps a work item row to its API shape
func NewWorkItemResponse(w *models.WorkItem) WorkItemResponse {
	return WorkItemResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
	}
}

// AssignHomeroomRequest assigns a student to a homeroom teacher
type AssignHomeroomRequest struct {
	HomeroomTeacherID *int64 `json:"homeroomTeacherId"` // Null clears the assignment
}

// DashboardStatsResponse aggregates school-wide counts for the admin dashboard
type DashboardStatsResponse struct {
	TotalStudents    int            `json:"totalStudents" example:"412"`
	TotalStaff       int            `json:"totalStaff" example:"38"`
	TotalClasses     int            `json:"totalClasses" example:"15"`
	TotalSubjects    int            `json:"totalSubjects" example:"12"`
	StudentsByClass  map[string]int `json:"studentsByClass"`
	StudentsByGender map[string]int `json:"studentsByGender"`
	StudentsByStatus map[string]int `json:"studentsByStatus"`
	PendingAchievements int         `json:"pendingAchievements" example:"6"`
}
