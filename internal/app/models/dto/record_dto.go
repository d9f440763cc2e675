package dto

import "github.com/sekolahku/sekolahku/internal/app/models"

// CreatePositiveNoteRequest represents the payload for recording a commendation
type CreatePositiveNoteRequest struct {
	Note     string  `json:"note" binding:"required" example:"Helped organize the class library"`
	Category *string `json:"category,omitempty" example:"social"`
	Date     string  `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2025-03-10"` // Defaults to today when omitted
}

// UpdatePositiveNoteRequest represents the payload for editing a commendation
type UpdatePositiveNoteRequest struct {
	Note     *string `json:"note,omitempty"`
	Category *string `json:"category,omitempty"`
	Date     *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// PositiveNoteResponse is the API shape of a commendation
type PositiveNoteResponse struct {
	ID        int64   `json:"id" example:"1"`
	StudentID int64   `json:"studentId" example:"1"`
	StaffID   int64   `json:"staffId" example:"2"`
	StaffName string  `json:"staffName,omitempty" example:"Siti Rahma"`
	Note      string  `json:"note"`
	Category  *string `json:"category,omitempty"`
	Date      string  `json:"date" example:"2025-03-10"`
	CreatedAt string  `json:"createdAt" example:"2025-03-10 09:15"`
}

// NewPositiveNoteResponse maps a note row to its API shape
func NewPositiveNoteResponse(n *models.PositiveNote, staffName string) PositiveNoteResponse {
	return PositiveNoteResponse{
		ID:        n.ID,
		StudentID: n.StudentID,
		StaffID:   n.StaffID,
		StaffName: staffName,
		Note:      n.Note,
		Category:  n.Category,
		Date:      n.Date.Format(DateFormat),
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
	}
}

// CreateDisciplinaryRecordRequest represents the payload for recording an
// incident. The public field names incidentDescription and incidentDate map
// onto the stored description and date columns.
type CreateDisciplinaryRecordRequest struct {
	IncidentType        string  `json:"incidentType" binding:"required" example:"late_arrival"`
	IncidentDescription string  `json:"incidentDescription" binding:"required"`
	ActionTaken         *string `json:"actionTaken,omitempty"`
	Severity            string  `json:"severity" binding:"required,oneof=minor moderate serious" example:"minor"`
	IncidentDate        string  `json:"incidentDate" binding:"omitempty,datetime=2006-01-02"` // Defaults to today when omitted
}

// UpdateDisciplinaryRecordRequest represents the payload for editing an incident
type UpdateDisciplinaryRecordRequest struct {
	IncidentType        *string `json:"incidentType,omitempty"`
	IncidentDescription *string `json:"incidentDescription,omitempty"`
	ActionTaken         *string `json:"actionTaken,omitempty"`
	Severity            *string `json:"severity,omitempty" binding:"omitempty,oneof=minor moderate serious"`
	IncidentDate        *string `json:"incidentDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// DisciplinaryRecordResponse is the API shape of an incident record. The
// stored description and date come back under their public names.
type DisciplinaryRecordResponse struct {
	ID                  int64   `json:"id" example:"1"`
	StudentID           int64   `json:"studentId" example:"1"`
	StaffID             int64   `json:"staffId" example:"2"`
	StaffName           string  `json:"staffName,omitempty" example:"Siti Rahma"`
	IncidentType        string  `json:"incidentType" example:"late_arrival"`
	IncidentDescription string  `json:"incidentDescription"`
	ActionTaken         *string `json:"actionTaken,omitempty"`
	Severity            string  `json:"severity" example:"minor"`
	IncidentDate        string  `json:"incidentDate" example:"2025-03-10"`
	CreatedAt           string  `json:"createdAt" example:"2025-03-10 09:15"`
}

// NewDisciplinaryRecordResponse maps an incident row to its API shape
func NewDisciplinaryRecordResponse(r *models.DisciplinaryRecord, staffName string) DisciplinaryRecordResponse {
	return DisciplinaryRecordResponse{
		ID:                  r.ID,
		StudentID:           r.StudentID,
		StaffID:             r.StaffID,
		StaffName:           staffName,
		IncidentType:        r.IncidentType,
		IncidentDescription: r.Description,
		ActionTaken:         r.ActionTaken,
		Severity:            string(r.Severity),
		IncidentDate:        r.Date.Format(DateFormat),
		CreatedAt:           r.CreatedAt.Format(DateTimeFormat),
	}
}

// CreateExtracurricularHistoryRequest represents the payload for recording a
// participation period
type CreateExtracurricularHistoryRequest struct {
	ExtracurricularID int64   `json:"extracurricularId" binding:"required" example:"3"`
	AcademicYear      string  `json:"academicYear" binding:"required" example:"2024-2025"`
	Role              *string `json:"role,omitempty" example:"member"`
	StartDate         string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate           *string `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"` // Must be strictly after startDate
	PerformanceNotes  *string `json:"performanceNotes,omitempty"`
}

// UpdateExtracurricularHistoryRequest represents the payload for editing a
// participation period
type UpdateExtracurricularHistoryRequest struct {
	ExtracurricularID *int64  `json:"extracurricularId,omitempty"`
	AcademicYear      *string `json:"academicYear,omitempty"`
	Role              *string `json:"role,omitempty"`
	StartDate         *string `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate           *string `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	PerformanceNotes  *string `json:"performanceNotes,omitempty"`
}

// ExtracurricularHistoryResponse is the API shape of a participation period
type ExtracurricularHistoryResponse struct {
	ID                  int64   `json:"id" example:"1"`
	StudentID           int64   `json:"studentId" example:"1"`
	ExtracurricularID   int64   `json:"extracurricularId" example:"3"`
	ExtracurricularName string  `json:"extracurricularName,omitempty" example:"Pramuka"`
	AcademicYear        string  `json:"academicYear" example:"2024-2025"`
	Role                *string `json:"role,omitempty"`
	StartDate           string  `json:"startDate" example:"2024-07-15"`
	EndDate             *string `json:"endDate,omitempty"`
	PerformanceNotes    *string `json:"performanceNotes,omitempty"`
}

// NewExtracurricularHistoryResponse maps a participation row to its API shape
func NewExtracurricularHistoryResponse(h *models.ExtracurricularHistory, activityName string) ExtracurricularHistoryResponse {
	resp := ExtracurricularHistoryResponse{
		ID:                  h.ID,
		StudentID:           h.StudentID,
		ExtracurricularID:   h.ExtracurricularID,
		ExtracurricularName: activityName,
		AcademicYear:        h.AcademicYear,
		Role:                h.Role,
		StartDate:           h.StartDate.Format(DateFormat),
		PerformanceNotes:    h.PerformanceNotes,
	}
	if h.EndDate != nil {
		ed := h.EndDate.Format(DateFormat)
		resp.EndDate = &ed
	}
	return resp
}

// CreateAchievementRequest represents the payload for recording an achievement
type CreateAchievementRequest struct {
	AchievementType     string   `json:"achievementType" binding:"required" example:"sports_achievement"`
	AchievementName     string   `json:"achievementName" binding:"required" example:"Juara 1 Futsal"`
	Description         *string  `json:"description,omitempty"`
	DateAchieved        string   `json:"dateAchieved" binding:"omitempty,datetime=2006-01-02"` // Defaults to today when omitted
	CriteriaMet         *string  `json:"criteriaMet,omitempty"`
	Level               string   `json:"level" binding:"required" example:"district"`
	ScoreValue          *float64 `json:"scoreValue,omitempty"`
	IssuingOrganization *string  `json:"issuingOrganization,omitempty"`
}

// UpdateAchievementRequest represents the payload for editing an achievement
type UpdateAchievementRequest struct {
	AchievementType     *string  `json:"achievementType,omitempty"`
	AchievementName     *string  `json:"achievementName,omitempty"`
	Description         *string  `json:"description,omitempty"`
	DateAchieved        *string  `json:"dateAchieved,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CriteriaMet         *string  `json:"criteriaMet,omitempty"`
	Level               *string  `json:"level,omitempty"`
	ScoreValue          *float64 `json:"scoreValue,omitempty"`
	IssuingOrganization *string  `json:"issuingOrganization,omitempty"`
}

// VerifyAchievementRequest represents the payload for the verification decision
type VerifyAchievementRequest struct {
	Status            string  `json:"status" binding:"required,oneof=verified rejected" example:"verified"`
	VerificationNotes *string `json:"verificationNotes,omitempty"`
}

// AchievementResponse is the API shape of an achievement
type AchievementResponse struct {
	ID                  int64    `json:"id" example:"1"`
	StudentID           int64    `json:"studentId" example:"1"`
	AchievementType     string   `json:"achievementType" example:"sports_achievement"`
	AchievementName     string   `json:"achievementName"`
	Description         *string  `json:"description,omitempty"`
	DateAchieved        string   `json:"dateAchieved" example:"2025-02-20"`
	CriteriaMet         *string  `json:"criteriaMet,omitempty"`
	Level               string   `json:"level" example:"district"`
	ScoreValue          *float64 `json:"scoreValue,omitempty"`
	IssuingOrganization *string  `json:"issuingOrganization,omitempty"`
	Status              string   `json:"status" example:"pending"`
	VerifiedBy          *int64   `json:"verifiedBy,omitempty"`
	VerifierName        *string  `json:"verifierName,omitempty"`
	VerifiedAt          *string  `json:"verifiedAt,omitempty" example:"2025-02-21 08:00"`
	VerificationNotes   *string  `json:"verificationNotes,omitempty"`
}

// NewAchievementResponse maps an achievement row to its API shape
func NewAchievementResponse(a *models.Achievement, verifierName *string) AchievementResponse {
	resp := AchievementResponse{
		ID:                  a.ID,
		StudentID:           a.StudentID,
		AchievementType:     a.AchievementType,
		AchievementName:     a.AchievementName,
		Description:         a.Description,
		DateAchieved:        a.DateAchieved.Format(DateFormat),
		CriteriaMet:         a.CriteriaMet,
		Level:               a.Level,
		ScoreValue:          a.ScoreValue,
		IssuingOrganization: a.IssuingOrganization,
		Status:              string(a.Status),
		VerifiedBy:          a.VerifiedBy,
		VerifierName:        verifierName,
		VerificationNotes:   a.VerificationNotes,
	}
	if a.VerifiedAt != nil {
		va := a.VerifiedAt.Format(DateTimeFormat)
		resp.VerifiedAt = &va
	}
	return resp
}
