package dto

import "github.com/sekolahku/sekolahku/internal/app/models"

// UploadDocumentRequest represents the multipart form fields accompanying a
// document upload
type UploadDocumentRequest struct {
	Title        string  `form:"title" binding:"required" example:"Surat Izin Sakit"`
	DocumentType string  `form:"documentType" binding:"required,oneof=sick_note excuse_letter medical_certificate permission_slip report transcript other" example:"sick_note"`
	Description  *string `form:"description"`
}

// DocumentResponse is the API shape of a stored document
type DocumentResponse struct {
	ID           int64   `json:"id" example:"1"`
	StudentID    int64   `json:"studentId" example:"1"`
	Title        string  `json:"title"`
	DocumentType string  `json:"documentType" example:"sick_note"`
	FileName     string  `json:"fileName" example:"surat_izin.pdf"`
	FileURL      string  `json:"fileUrl"`
	FileSize     int64   `json:"fileSize" example:"204800"`
	MimeType     string  `json:"mimeType" example:"application/pdf"`
	UploadedBy   int64   `json:"uploadedBy" example:"2"`
	UploaderName string  `json:"uploaderName,omitempty" example:"Siti Rahma"`
	UploadedAt   string  `json:"uploadedAt" example:"2025-03-10 09:15"`
	Description  *string `json:"description,omitempty"`
}

// NewDocumentResponse maps a document row to its API shape. fileURL is the
// resolved download location.
func NewDocumentResponse(d *models.StudentDocument, fileURL, uploaderName string) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		StudentID:    d.StudentID,
		Title:        d.Title,
		DocumentType: string(d.DocumentType),
		FileName:     d.FileName,
		FileURL:      fileURL,
		FileSize:     d.FileSize,
		MimeType:     d.MimeType,
		UploadedBy:   d.UploadedBy,
		UploaderName: uploaderName,
		UploadedAt:   d.UploadedAt.Format(DateTimeFormat),
		Description:  d.Description,
	}
}

// DownloadURLResponse carries the resolved location of a stored file
type DownloadURLResponse struct {
	URL string `json:"url"`
}

// DeleteDocumentResponse reports the outcome of a document deletion. Warning
// is set when the database row was removed but the stored file could not be
// cleaned up.
type DeleteDocumentResponse struct {
	Deleted bool   `json:"deleted" example:"true"`
	Warning string `json:"warning,omitempty" example:"stored file could not be removed"`
}
