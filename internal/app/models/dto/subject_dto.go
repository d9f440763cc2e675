package dto

import "github.com/sekolahku/sekolahku/internal/app/models"

// WorkItemProgress reports one work item's state for a teacher-subject pairing
type WorkItemProgress struct {
	WorkItemID    int64   `json:"workItemId" example:"1"`
	WorkItemName  string  `json:"workItemName" example:"Rencana Pelaksanaan Pembelajaran"`
	FileCount     int     `json:"fileCount" example:"2"`
	Completed     bool    `json:"completed" example:"true"` // At least one file uploaded
	DriveFolderID *string `json:"driveFolderId,omitempty"`
}

// SubjectProgressResponse is one assigned subject with its documentation progress
type SubjectProgressResponse struct {
	ID                   int64              `json:"id" example:"3"`
	Name                 string             `json:"name" example:"Matematika"`
	Code                 string             `json:"code" example:"MTK-7"`
	Description          *string            `json:"description,omitempty"`
	TotalWorkItems       int                `json:"totalWorkItems" example:"8"`
	CompletedWorkItems   int                `json:"completedWorkItems" example:"5"`
	CompletionPercentage float64            `json:"completionPercentage" example:"62.5"`
	WorkItems            []WorkItemProgress `json:"workItems,omitempty"`
}

// SubjectListResponse is the assigned subject list with overall statistics
type SubjectListResponse struct {
	Subjects             []SubjectProgressResponse `json:"subjects"`
	TotalSubjects        int                       `json:"totalSubjects" example:"3"`
	OverallCompletion    float64                   `json:"overallCompletion" example:"54.2"`
	FullyCompletedCount  int                       `json:"fullyCompletedCount" example:"1"`
}

// EnrolledStudent is the short student representation in subject detail
type EnrolledStudent struct {
	ID    int64  `json:"id" example:"1"`
	NISN  string `json:"nisn" example:"0051234567"`
	Name  string `json:"name" example:"Budi Santoso"`
	Class string `json:"class" example:"7A"`
}

// SubjectDetailResponse is the full subject view for an assigned teacher
type SubjectDetailResponse struct {
	Subject          SubjectProgressResponse `json:"subject"`
	EnrolledStudents []EnrolledStudent       `json:"enrolledStudents"`
	StudentCount     int                     `json:"studentCount" example:"28"`
}

// InitFoldersResponse reports the work folders created for a subject
type InitFoldersResponse struct {
	SubjectID      int64 `json:"subjectId" example:"3"`
	FoldersCreated int   `json:"foldersCreated" example:"8"`
	FoldersSkipped int   `json:"foldersSkipped" example:"0"` // Already initialized
}

// WorkFileResponse is the API shape of an uploaded work document
type WorkFileResponse struct {
	ID         int64  `json:"id" example:"1"`
	WorkID     int64  `json:"workId" example:"4"`
	FileName   string `json:"fileName" example:"rpp_bab1.pdf"`
	FileURL    string `json:"fileUrl"`
	FileSize   int64  `json:"fileSize" example:"102400"`
	MimeType   string `json:"mimeType" example:"application/pdf"`
	UploadedAt string `json:"uploadedAt" example:"2025-03-10 09:15"`
}

// NewWorkFileResponse maps a work file row to its API shape
func NewWorkFileResponse(f *models.WorkFile, fileURL string) WorkFileResponse {
	return WorkFileResponse{
		ID:         f.ID,
		WorkID:     f.WorkID,
		FileName:   f.FileName,
		FileURL:    fileURL,
		FileSize:   f.FileSize,
		MimeType:   f.MimeType,
		UploadedAt: f.UploadedAt.Format(DateTimeFormat),
	}
}
