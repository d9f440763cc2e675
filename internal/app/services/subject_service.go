package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sekolahku/sekolahku/internal/app/auth"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/pkg/filestorage"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// folderSaver is satisfied by storage backends that can place a file directly
// into a previously created remote folder.
type folderSaver interface {
	SaveToFolder(ctx context.Context, fileHeader *multipart.FileHeader, folderID string) (string, error)
}

// SubjectService defines the interface for a teacher's subject and
// documentation progress operations
type SubjectService interface {
	ListMySubjects(ctx context.Context, userID int64) (*dto.SubjectListResponse, error)
	GetSubjectDetail(ctx context.Context, userID, subjectID int64) (*dto.SubjectDetailResponse, error)
	InitWorkFolders(ctx context.Context, userID, subjectID int64) (*dto.InitFoldersResponse, error)
	UploadWorkFile(ctx context.Context, userID, subjectID, workItemID int64, file *multipart.FileHeader) (*dto.WorkFileResponse, error)
	ListWorkFiles(ctx context.Context, userID, subjectID, workItemID int64) ([]dto.WorkFileResponse, error)
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo   *repositories.SubjectRepository
	workRepo      *repositories.WorkRepository
	authz         *auth.AuthorizationService
	storage       filestorage.Storage
	folderCreator filestorage.FolderCreator // nil when the backend has no folder support
	baseURL       string
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(
	repos *repositories.Repositories,
	authz *auth.AuthorizationService,
	storage filestorage.Storage,
	folderCreator filestorage.FolderCreator,
	baseURL string,
) SubjectService {
	return &subjectServiceImpl{
		subjectRepo:   repos.SubjectRepository,
		workRepo:      repos.WorkRepository,
		authz:         authz,
		storage:       storage,
		folderCreator: folderCreator,
		baseURL:       baseURL,
	}
}

// buildProgress assembles the documentation progress of one subject for one
// teacher. Work items with no progress row yet count as not completed.
func (s *subjectServiceImpl) buildProgress(ctx context.Context, staffID int64, subject *models.Subject, includeItems bool) (dto.SubjectProgressResponse, error) {
	items, err := s.workRepo.GetAllItems(ctx)
	if err != nil {
		return dto.SubjectProgressResponse{}, err
	}
	counts, err := s.workRepo.CountWorkFiles(ctx, staffID, subject.ID)
	if err != nil {
		return dto.SubjectProgressResponse{}, err
	}
	works, err := s.workRepo.ListWorksBySubject(ctx, staffID, subject.ID)
	if err != nil {
		return dto.SubjectProgressResponse{}, err
	}
	foldersByItem := make(map[int64]*string, len(works))
	for _, w := range works {
		foldersByItem[w.WorkItemID] = w.DriveFolderID
	}

	progress := dto.SubjectProgressResponse{
		ID:             subject.ID,
		Name:           subject.Name,
		Code:           subject.Code,
		Description:    subject.Description,
		TotalWorkItems: len(items),
	}
	for _, item := range items {
		fileCount := counts[item.ID]
		if fileCount > 0 {
			progress.CompletedWorkItems++
		}
		if includeItems {
			progress.WorkItems = append(progress.WorkItems, dto.WorkItemProgress{
				WorkItemID:    item.ID,
				WorkItemName:  item.Name,
				FileCount:     fileCount,
				Completed:     fileCount > 0,
				DriveFolderID: foldersByItem[item.ID],
			})
		}
	}
	progress.CompletionPercentage = CompletionPercentage(progress.CompletedWorkItems, progress.TotalWorkItems)
	return progress, nil
}

// ListMySubjects returns the caller's assigned subjects with their
// documentation progress.
func (s *subjectServiceImpl) ListMySubjects(ctx context.Context, userID int64) (*dto.SubjectListResponse, error) {
	staff, err := s.authz.ResolveStaff(ctx, userID)
	if err != nil {
		return nil, err
	}

	subjects, err := s.subjectRepo.ListByStaff(ctx, staff.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SubjectListResponse{
		Subjects:      make([]dto.SubjectProgressResponse, 0, len(subjects)),
		TotalSubjects: len(subjects),
	}
	var completionSum float64
	for _, subject := range subjects {
		progress, err := s.buildProgress(ctx, staff.ID, subject, false)
		if err != nil {
			return nil, err
		}
		completionSum += progress.CompletionPercentage
		if progress.TotalWorkItems > 0 && progress.CompletedWorkItems == progress.TotalWorkItems {
			resp.FullyCompletedCount++
		}
		resp.Subjects = append(resp.Subjects, progress)
	}
	if len(subjects) > 0 {
		resp.OverallCompletion = roundToTenth(completionSum / float64(len(subjects)))
	}
	return resp, nil
}

// GetSubjectDetail returns one assigned subject with per-item progress and
// the enrolled student list.
func (s *subjectServiceImpl) GetSubjectDetail(ctx context.Context, userID, subjectID int64) (*dto.SubjectDetailResponse, error) {
	staff, err := s.authz.RequireSubjectAssignee(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	progress, err := s.buildProgress(ctx, staff.ID, subject, true)
	if err != nil {
		return nil, err
	}

	students, err := s.subjectRepo.GetEnrolledStudents(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	detail := &dto.SubjectDetailResponse{
		Subject:          progress,
		EnrolledStudents: make([]dto.EnrolledStudent, 0, len(students)),
		StudentCount:     len(students),
	}
	for _, st := range students {
		detail.EnrolledStudents = append(detail.EnrolledStudents, dto.EnrolledStudent{
			ID:    st.ID,
			NISN:  st.NISN,
			Name:  st.Name,
			Class: st.Class,
		})
	}
	return detail, nil
}

// InitWorkFolders creates one remote folder per work item for the caller's
// subject. Items that already have a folder are skipped, so the operation is
// safe to repeat.
func (s *subjectServiceImpl) InitWorkFolders(ctx context.Context, userID, subjectID int64) (*dto.InitFoldersResponse, error) {
	staff, err := s.authz.RequireSubjectAssignee(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	if s.folderCreator == nil {
		return nil, apperrors.NewBadRequestError("remote storage is not configured")
	}

	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	items, err := s.workRepo.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.InitFoldersResponse{SubjectID: subjectID}
	for _, item := range items {
		work, err := s.workRepo.EnsureWork(ctx, staff.ID, subjectID, item.ID)
		if err != nil {
			return nil, err
		}
		if work.DriveFolderID != nil {
			resp.FoldersSkipped++
			continue
		}

		folderName := fmt.Sprintf("%s - %s - %s", subject.Code, staff.Name, item.Name)
		folderID, err := s.folderCreator.CreateFolder(ctx, folderName)
		if err != nil {
			logger.Error().Err(err).Str("folder", folderName).Msg("Error creating work folder")
			return nil, apperrors.ErrStorageFailure
		}
		if err := s.workRepo.SetDriveFolder(ctx, work.ID, folderID); err != nil {
			return nil, err
		}
		resp.FoldersCreated++
	}
	return resp, nil
}

// UploadWorkFile stores one work document for the caller's subject and work
// item. When the backend supports folders and the item has one, the file
// lands there; otherwise it goes to the shared work area.
func (s *subjectServiceImpl) UploadWorkFile(ctx context.Context, userID, subjectID, workItemID int64, file *multipart.FileHeader) (*dto.WorkFileResponse, error) {
	staff, err := s.authz.RequireSubjectAssignee(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.workRepo.GetItemByID(ctx, workItemID); err != nil {
		return nil, err
	}

	work, err := s.workRepo.EnsureWork(ctx, staff.ID, subjectID, workItemID)
	if err != nil {
		return nil, err
	}

	var ref string
	if fs, ok := s.storage.(folderSaver); ok && work.DriveFolderID != nil {
		ref, err = fs.SaveToFolder(ctx, file, *work.DriveFolderID)
	} else {
		ref, err = s.storage.Save(ctx, file, filestorage.FolderTeacherWork)
	}
	if err != nil {
		logger.Error().Err(err).Int64("workID", work.ID).Msg("Error storing work file")
		return nil, apperrors.ErrStorageFailure
	}

	workFile := &models.WorkFile{
		WorkID:   work.ID,
		FileName: file.Filename,
		FilePath: ref,
		FileSize: file.Size,
		MimeType: file.Header.Get("Content-Type"),
	}
	id, err := s.workRepo.AddWorkFile(ctx, workFile)
	if err != nil {
		if cleanupErr := s.storage.Delete(ctx, ref); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("ref", ref).Msg("Failed to remove orphaned work file")
		}
		return nil, err
	}
	workFile.ID = id

	files, err := s.workRepo.ListWorkFiles(ctx, work.ID)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.ID == id {
			resp := dto.NewWorkFileResponse(f, filestorage.ResolveURL(s.baseURL, f.FilePath))
			return &resp, nil
		}
	}
	resp := dto.NewWorkFileResponse(workFile, filestorage.ResolveURL(s.baseURL, ref))
	return &resp, nil
}

// ListWorkFiles returns the files uploaded for one work item of the caller's
// subject.
func (s *subjectServiceImpl) ListWorkFiles(ctx context.Context, userID, subjectID, workItemID int64) ([]dto.WorkFileResponse, error) {
	staff, err := s.authz.RequireSubjectAssignee(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}

	work, err := s.workRepo.GetWork(ctx, staff.ID, subjectID, workItemID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrWorkItemNotFound) {
			// Nothing uploaded yet.
			return []dto.WorkFileResponse{}, nil
		}
		return nil, err
	}

	files, err := s.workRepo.ListWorkFiles(ctx, work.ID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.WorkFileResponse, 0, len(files))
	for _, f := range files {
		result = append(result, dto.NewWorkFileResponse(f, filestorage.ResolveURL(s.baseURL, f.FilePath)))
	}
	return result, nil
}
