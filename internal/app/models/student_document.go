package models

import "time"

// DocumentType classifies an uploaded student document
type DocumentType string

const (
	DocumentSickNote           DocumentType = "sick_note"
	DocumentExcuseLetter       DocumentType = "excuse_letter"
	DocumentMedicalCertificate DocumentType = "medical_certificate"
	DocumentPermissionSlip     DocumentType = "permission_slip"
	DocumentReport             DocumentType = "report"
	DocumentTranscript         DocumentType = "transcript"
	DocumentOther              DocumentType = "other"
)

// StudentDocument defines an uploaded file based on the 'student_documents' table
type StudentDocument struct {
	ID           int64        `json:"id" db:"id" example:"1"`
	StudentID    int64        `json:"studentId" db:"student_id" example:"1"`
	Title        string       `json:"title" db:"title" example:"Surat Izin Sakit"`
	DocumentType DocumentType `json:"documentType" db:"document_type" example:"sick_note"`
	FileName     string       `json:"fileName" db:"file_name" example:"surat_izin.pdf"` // Original upload filename
	FilePath     string       `json:"filePath" db:"file_path"`                          // Stored reference, local path or remote URL
	FileSize     int64        `json:"fileSize" db:"file_size" example:"204800"`         // Size in bytes
	MimeType     string       `json:"mimeType" db:"mime_type" example:"application/pdf"`
	UploadedBy   int64        `json:"uploadedBy" db:"uploaded_by"`                      // Staff ID of the uploader
	UploadedAt   time.Time    `json:"uploadedAt" db:"uploaded_at"`
	Description  *string      `json:"description,omitempty" db:"description"`

	// Relations (populated when needed)
	Uploader *Staff `json:"uploader,omitempty"`
}
