package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/sekolahku/sekolahku/internal/app/auth"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/pkg/dberrors"
	"github.com/sekolahku/sekolahku/internal/pkg/filestorage"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// Number of recent entries included in the behavior summary
const behaviorRecentLimit = 5

// StudentService defines the interface for homeroom student operations
type StudentService interface {
	GetRoster(ctx context.Context, userID int64) (*dto.StudentListResponse, error)
	CreateStudent(ctx context.Context, userID int64, req *dto.CreateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error)
	GetStudentDetail(ctx context.Context, userID, studentID int64) (*dto.StudentDetailResponse, error)
	UpdateStudent(ctx context.Context, userID, studentID int64, req *dto.UpdateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error)
	RemoveStudent(ctx context.Context, userID, studentID int64) error
	GetBehaviorSummary(ctx context.Context, userID, studentID int64) (*dto.BehaviorSummaryResponse, error)
	GetAcademicSummary(ctx context.Context, userID, studentID int64) (*dto.AcademicSummaryResponse, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo  *repositories.StudentRepository
	staffRepo    *repositories.StaffRepository
	noteRepo     *repositories.PositiveNoteRepository
	discRepo     *repositories.DisciplinaryRepository
	extraRepo    *repositories.ExtracurricularRepository
	documentRepo *repositories.DocumentRepository
	achieveRepo  *repositories.AchievementRepository
	gradeRepo    *repositories.GradeRepository
	authz        *auth.AuthorizationService
	storage      filestorage.Storage
	baseURL      string
}

// NewStudentService creates a new student service instance
func NewStudentService(
	repos *repositories.Repositories,
	authz *auth.AuthorizationService,
	storage filestorage.Storage,
	baseURL string,
) StudentService {
	return &studentServiceImpl{
		studentRepo:  repos.StudentRepository,
		staffRepo:    repos.StaffRepository,
		noteRepo:     repos.PositiveNoteRepository,
		discRepo:     repos.DisciplinaryRepository,
		extraRepo:    repos.ExtracurricularRepository,
		documentRepo: repos.DocumentRepository,
		achieveRepo:  repos.AchievementRepository,
		gradeRepo:    repos.GradeRepository,
		authz:        authz,
		storage:      storage,
		baseURL:      baseURL,
	}
}

func (s *studentServiceImpl) photoURL(student *models.Student) *string {
	if student.Photo == nil || *student.Photo == "" {
		return nil
	}
	url := filestorage.ResolveURL(s.baseURL, *student.Photo)
	return &url
}

// GetRoster returns the caller's homeroom students with roster statistics.
func (s *studentServiceImpl) GetRoster(ctx context.Context, userID int64) (*dto.StudentListResponse, error) {
	staff, err := s.authz.ResolveStaff(ctx, userID)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetByHomeroomTeacher(ctx, staff.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.StudentListResponse{
		Students: make([]dto.StudentResponse, 0, len(students)),
		Stats:    BuildClassStats(students),
	}
	for _, st := range students {
		resp.Students = append(resp.Students, dto.NewStudentResponse(st, s.photoURL(st)))
	}
	return resp, nil
}

// CreateStudent registers a student into the caller's homeroom class. The
// student's class and homeroom teacher follow from the caller's profile, not
// from the request.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, userID int64, req *dto.CreateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error) {
	staff, err := s.authz.ResolveStaff(ctx, userID)
	if err != nil {
		return nil, err
	}
	if staff.HomeroomClass == nil {
		return nil, apperrors.ErrNoHomeroomAssigned
	}

	student := &models.Student{
		NISN:              req.NISN,
		Name:              req.Name,
		Gender:            models.Gender(req.Gender),
		Birthplace:        req.Birthplace,
		Religion:          req.Religion,
		Class:             *staff.HomeroomClass,
		EntryYear:         req.EntryYear,
		GraduationYear:    req.GraduationYear,
		Status:            models.StudentStatusActive,
		HomeroomTeacherID: &staff.ID,
		ParentName:        req.ParentName,
		ParentPhone:       req.ParentPhone,
		Address:           req.Address,
		Notes:             req.Notes,
	}
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}
	if req.BirthDate != "" {
		bd, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid birth date", apperrors.ErrValidationFailed)
		}
		student.BirthDate = &bd
	}

	if photo != nil {
		ref, err := s.storage.Save(ctx, photo, filestorage.FolderStudentPhotos)
		if err != nil {
			logger.Error().Err(err).Str("nisn", req.NISN).Msg("Error storing student photo")
			return nil, apperrors.ErrStorageFailure
		}
		student.Photo = &ref
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_nisn_key") {
			return nil, apperrors.ErrNISNAlreadyExists
		}
		return nil, err
	}

	created, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStudentResponse(created, s.photoURL(created))
	return &resp, nil
}

// GetStudentDetail returns the full student view with every record collection
// attached. Only the student's homeroom teacher may read it.
func (s *studentServiceImpl) GetStudentDetail(ctx context.Context, userID, studentID int64) (*dto.StudentDetailResponse, error) {
	staff, student, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	incidents, err := s.discRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	history, err := s.extraRepo.ListHistoryByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	documents, err := s.documentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	achievements, err := s.achieveRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	staffNames, err := s.collectStaffNames(ctx, notes, incidents, documents)
	if err != nil {
		return nil, err
	}

	detail := &dto.StudentDetailResponse{
		Student: dto.NewStudentResponse(student, s.photoURL(student)),
		HomeroomTeacher: &dto.StaffBrief{
			ID:       staff.ID,
			Name:     staff.Name,
			Position: staff.Position,
		},
		PositiveNotes:          make([]dto.PositiveNoteResponse, 0, len(notes)),
		DisciplinaryRecords:    make([]dto.DisciplinaryRecordResponse, 0, len(incidents)),
		ExtracurricularHistory: make([]dto.ExtracurricularHistoryResponse, 0, len(history)),
		Documents:              make([]dto.DocumentResponse, 0, len(documents)),
		Achievements:           make([]dto.AchievementResponse, 0, len(achievements)),
	}

	for _, n := range notes {
		detail.PositiveNotes = append(detail.PositiveNotes, dto.NewPositiveNoteResponse(n, staffNames[n.StaffID]))
	}
	for _, rec := range incidents {
		detail.DisciplinaryRecords = append(detail.DisciplinaryRecords, dto.NewDisciplinaryRecordResponse(rec, staffNames[rec.StaffID]))
	}
	for _, h := range history {
		name := ""
		if h.Extracurricular != nil {
			name = h.Extracurricular.Name
		}
		detail.ExtracurricularHistory = append(detail.ExtracurricularHistory, dto.NewExtracurricularHistoryResponse(h, name))
	}
	for _, d := range documents {
		fileURL := filestorage.ResolveURL(s.baseURL, d.FilePath)
		detail.Documents = append(detail.Documents, dto.NewDocumentResponse(d, fileURL, staffNames[d.UploadedBy]))
	}
	for _, a := range achievements {
		detail.Achievements = append(detail.Achievements, dto.NewAchievementResponse(a, s.verifierName(ctx, a)))
	}
	return detail, nil
}

func (s *studentServiceImpl) collectStaffNames(
	ctx context.Context,
	notes []*models.PositiveNote,
	incidents []*models.DisciplinaryRecord,
	documents []*models.StudentDocument,
) (map[int64]string, error) {
	idSet := make(map[int64]bool)
	for _, n := range notes {
		idSet[n.StaffID] = true
	}
	for _, rec := range incidents {
		idSet[rec.StaffID] = true
	}
	for _, d := range documents {
		idSet[d.UploadedBy] = true
	}
	if len(idSet) == 0 {
		return map[int64]string{}, nil
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	return s.staffRepo.GetNamesByIDs(ctx, ids)
}

func (s *studentServiceImpl) verifierName(ctx context.Context, a *models.Achievement) *string {
	if a.VerifiedBy == nil {
		return nil
	}
	staff, err := s.staffRepo.GetByUserID(ctx, *a.VerifiedBy)
	if err != nil {
		// Admin verifiers may have no staff row.
		return nil
	}
	return &staff.Name
}

// UpdateStudent edits a student in the caller's homeroom. Class placement is
// managed by administration and cannot be changed here.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, userID, studentID int64, req *dto.UpdateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error) {
	_, student, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	if req.Class != nil && *req.Class != student.Class {
		return nil, apperrors.NewForbiddenError("class placement is managed by administration")
	}

	if err := applyStudentUpdate(student, req); err != nil {
		return nil, err
	}

	oldPhoto := student.Photo
	replacedPhoto := false
	if photo != nil {
		ref, err := s.storage.Save(ctx, photo, filestorage.FolderStudentPhotos)
		if err != nil {
			logger.Error().Err(err).Int64("studentID", studentID).Msg("Error storing replacement photo")
			return nil, apperrors.ErrStorageFailure
		}
		student.Photo = &ref
		replacedPhoto = true
	} else if req.RemovePhoto {
		student.Photo = nil
		replacedPhoto = true
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	if replacedPhoto && oldPhoto != nil && *oldPhoto != "" {
		if err := s.storage.Delete(ctx, *oldPhoto); err != nil {
			logger.Warn().Err(err).Int64("studentID", studentID).Msg("Failed to remove previous photo")
		}
	}

	resp := dto.NewStudentResponse(student, s.photoURL(student))
	return &resp, nil
}

// RemoveStudent detaches a student from the caller's homeroom. The student
// row and all attached records survive for administration.
func (s *studentServiceImpl) RemoveStudent(ctx context.Context, userID, studentID int64) error {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return err
	}
	return s.studentRepo.ClearHomeroomTeacher(ctx, studentID)
}

// GetBehaviorSummary derives the behavior standing of a student from their
// note and incident counts.
func (s *studentServiceImpl) GetBehaviorSummary(ctx context.Context, userID, studentID int64) (*dto.BehaviorSummaryResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	positiveCount, err := s.noteRepo.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	disciplinaryCount, err := s.discRepo.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	incidents, err := s.discRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(notes) > behaviorRecentLimit {
		notes = notes[:behaviorRecentLimit]
	}
	if len(incidents) > behaviorRecentLimit {
		incidents = incidents[:behaviorRecentLimit]
	}

	staffNames, err := s.collectStaffNames(ctx, notes, incidents, nil)
	if err != nil {
		return nil, err
	}

	resp := &dto.BehaviorSummaryResponse{
		StudentID:         studentID,
		BehaviorScore:     BehaviorScore(positiveCount, disciplinaryCount),
		PositiveCount:     positiveCount,
		DisciplinaryCount: disciplinaryCount,
		RecentNotes:       make([]dto.PositiveNoteResponse, 0, len(notes)),
		RecentIncidents:   make([]dto.DisciplinaryRecordResponse, 0, len(incidents)),
	}
	for _, n := range notes {
		resp.RecentNotes = append(resp.RecentNotes, dto.NewPositiveNoteResponse(n, staffNames[n.StaffID]))
	}
	for _, rec := range incidents {
		resp.RecentIncidents = append(resp.RecentIncidents, dto.NewDisciplinaryRecordResponse(rec, staffNames[rec.StaffID]))
	}
	return resp, nil
}

// GetAcademicSummary reports per-subject grade averages for a student.
func (s *studentServiceImpl) GetAcademicSummary(ctx context.Context, userID, studentID int64) (*dto.AcademicSummaryResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	averages, err := s.gradeRepo.AveragesByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AcademicSummaryResponse{
		StudentID: studentID,
		Subjects:  make([]dto.SubjectAverage, 0, len(averages)),
	}
	var weightedSum float64
	for _, row := range averages {
		resp.GradeCount += row.GradeCount
		weightedSum += row.Average * float64(row.GradeCount)
		resp.Subjects = append(resp.Subjects, dto.SubjectAverage{
			SubjectID:   row.SubjectID,
			SubjectName: row.SubjectName,
			Average:     roundToTenth(row.Average),
			GradeCount:  row.GradeCount,
		})
	}
	if resp.GradeCount > 0 {
		resp.OverallAverage = roundToTenth(weightedSum / float64(resp.GradeCount))
	}
	return resp, nil
}

// applyStudentUpdate merges an update payload into a student row. Omitted
// fields keep their current value; class changes are applied here, so callers
// that disallow them must reject the request first.
func applyStudentUpdate(student *models.Student, req *dto.UpdateStudentRequest) error {
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Gender != nil {
		student.Gender = models.Gender(*req.Gender)
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			student.BirthDate = nil
		} else {
			bd, err := dto.ParseDate(*req.BirthDate)
			if err != nil {
				return fmt.Errorf("%w: invalid birth date", apperrors.ErrValidationFailed)
			}
			student.BirthDate = &bd
		}
	}
	if req.Birthplace != nil {
		student.Birthplace = req.Birthplace
	}
	if req.Religion != nil {
		student.Religion = req.Religion
	}
	if req.Class != nil && *req.Class != "" {
		student.Class = *req.Class
	}
	if req.EntryYear != nil {
		student.EntryYear = *req.EntryYear
	}
	if req.GraduationYear != nil {
		student.GraduationYear = req.GraduationYear
	}
	if req.Status != nil {
		student.Status = models.StudentStatus(*req.Status)
	}
	if req.ParentName != nil {
		student.ParentName = req.ParentName
	}
	if req.ParentPhone != nil {
		student.ParentPhone = req.ParentPhone
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.Notes != nil {
		student.Notes = req.Notes
	}
	return nil
}

func roundToTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

// todayDate truncates now to a date in the server's timezone. Record dates
// default to it when a payload omits the date.
func todayDate() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// parseRecordDate parses an optional wire date and applies the default and
// the no-future rule shared by all record types.
func parseRecordDate(raw string) (time.Time, error) {
	if raw == "" {
		return todayDate(), nil
	}
	date, err := dto.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date", apperrors.ErrValidationFailed)
	}
	if date.After(todayDate()) {
		return time.Time{}, apperrors.ErrDateInFuture
	}
	return date, nil
}
