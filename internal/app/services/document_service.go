package services

import (
	"context"
	"mime/multipart"

	"github.com/sekolahku/sekolahku/internal/app/auth"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/pkg/filestorage"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// DocumentService defines the interface for student document operations
type DocumentService interface {
	Upload(ctx context.Context, userID, studentID int64, req *dto.UploadDocumentRequest, file *multipart.FileHeader) (*dto.DocumentResponse, error)
	ListByStudent(ctx context.Context, userID, studentID int64) ([]dto.DocumentResponse, error)
	GetDownloadURL(ctx context.Context, userID, documentID int64) (string, error)
	Delete(ctx context.Context, userID, documentID int64) (*dto.DeleteDocumentResponse, error)
}

// documentServiceImpl implements the DocumentService interface
type documentServiceImpl struct {
	documentRepo *repositories.DocumentRepository
	staffRepo    *repositories.StaffRepository
	authz        *auth.AuthorizationService
	storage      filestorage.Storage
	baseURL      string
}

// NewDocumentService creates a new document service instance
func NewDocumentService(repos *repositories.Repositories, authz *auth.AuthorizationService, storage filestorage.Storage, baseURL string) DocumentService {
	return &documentServiceImpl{
		documentRepo: repos.DocumentRepository,
		staffRepo:    repos.StaffRepository,
		authz:        authz,
		storage:      storage,
		baseURL:      baseURL,
	}
}

// Upload stores the file first and only then writes the database row, so a
// storage failure never leaves a dangling reference.
func (s *documentServiceImpl) Upload(ctx context.Context, userID, studentID int64, req *dto.UploadDocumentRequest, file *multipart.FileHeader) (*dto.DocumentResponse, error) {
	staff, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	ref, err := s.storage.Save(ctx, file, filestorage.FolderStudentDocuments)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error storing student document")
		return nil, apperrors.ErrStorageFailure
	}

	document := &models.StudentDocument{
		StudentID:    studentID,
		Title:        req.Title,
		DocumentType: models.DocumentType(req.DocumentType),
		FileName:     file.Filename,
		FilePath:     ref,
		FileSize:     file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		UploadedBy:   staff.ID,
		Description:  req.Description,
	}
	id, err := s.documentRepo.Create(ctx, document)
	if err != nil {
		// The row failed, clean up the orphaned file.
		if cleanupErr := s.storage.Delete(ctx, ref); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("ref", ref).Msg("Failed to remove orphaned document file")
		}
		return nil, err
	}

	created, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewDocumentResponse(created, filestorage.ResolveURL(s.baseURL, created.FilePath), staff.Name)
	return &resp, nil
}

// ListByStudent returns a homeroom student's documents, newest upload first.
func (s *documentServiceImpl) ListByStudent(ctx context.Context, userID, studentID int64) ([]dto.DocumentResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(documents))
	for _, d := range documents {
		ids = append(ids, d.UploadedBy)
	}
	names := map[int64]string{}
	if len(ids) > 0 {
		names, err = s.staffRepo.GetNamesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	result := make([]dto.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		result = append(result, dto.NewDocumentResponse(d, filestorage.ResolveURL(s.baseURL, d.FilePath), names[d.UploadedBy]))
	}
	return result, nil
}

// GetDownloadURL resolves the download location of a document.
func (s *documentServiceImpl) GetDownloadURL(ctx context.Context, userID, documentID int64) (string, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	_, _, err = s.authz.RequireHomeroomOwner(ctx, userID, document.StudentID)
	if err != nil {
		return "", err
	}
	return filestorage.ResolveURL(s.baseURL, document.FilePath), nil
}

// Delete removes a document. The database row always goes; a storage failure
// only produces a warning in the response because the row is the source of
// truth.
func (s *documentServiceImpl) Delete(ctx context.Context, userID, documentID int64) (*dto.DeleteDocumentResponse, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	_, _, err = s.authz.RequireHomeroomOwner(ctx, userID, document.StudentID)
	if err != nil {
		return nil, err
	}

	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return nil, err
	}

	resp := &dto.DeleteDocumentResponse{Deleted: true}
	if err := s.storage.Delete(ctx, document.FilePath); err != nil {
		logger.Warn().Err(err).Int64("documentID", documentID).Msg("Stored file could not be removed")
		resp.Warning = "stored file could not be removed"
	}
	return resp, nil
}
