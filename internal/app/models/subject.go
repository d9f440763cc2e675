package models

import "time"

// Subject defines a taught subject based on the 'subjects' table
type Subject struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Matematika"`
	Code        string    `json:"code" db:"code" example:"MTK-7"` // Subject code, unique
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// WorkItem defines a required documentation category based on the 'work_items' table.
// Every teacher-subject pairing is expected to produce one body of work per item.
type WorkItem struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Rencana Pelaksanaan Pembelajaran"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// TeacherSubjectWork tracks a teacher's progress on one work item for one
// subject, based on the 'teacher_subject_works' table
type TeacherSubjectWork struct {
	ID            int64     `json:"id" db:"id"`
	StaffID       int64     `json:"staffId" db:"staff_id"`
	SubjectID     int64     `json:"subjectId" db:"subject_id"`
	WorkItemID    int64     `json:"workItemId" db:"work_item_id"`
	DriveFolderID *string   `json:"driveFolderId,omitempty" db:"drive_folder_id"` // Remote folder for uploads (nullable)
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	WorkItem *WorkItem `json:"workItem,omitempty"`
}

// WorkFile defines an uploaded work document based on the 'work_files' table
type WorkFile struct {
	ID         int64     `json:"id" db:"id"`
	WorkID     int64     `json:"workId" db:"work_id"` // TeacherSubjectWork ID
	FileName   string    `json:"fileName" db:"file_name"`
	FilePath   string    `json:"filePath" db:"file_path"`
	FileSize   int64     `json:"fileSize" db:"file_size"`
	MimeType   string    `json:"mimeType" db:"mime_type"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}
