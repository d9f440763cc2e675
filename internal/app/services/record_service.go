package services

import (
	"context"

	"github.com/sekolahku/sekolahku/internal/app/auth"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
)

// RecordService defines the interface for behavior record operations.
// Positive notes and disciplinary records share the same access rules: the
// student must be in the caller's homeroom, and edits require authorship.
type RecordService interface {
	CreatePositiveNote(ctx context.Context, userID, studentID int64, req *dto.CreatePositiveNoteRequest) (*dto.PositiveNoteResponse, error)
	ListPositiveNotes(ctx context.Context, userID, studentID int64) ([]dto.PositiveNoteResponse, error)
	UpdatePositiveNote(ctx context.Context, userID, noteID int64, req *dto.UpdatePositiveNoteRequest) (*dto.PositiveNoteResponse, error)
	DeletePositiveNote(ctx context.Context, userID, noteID int64) error

	CreateDisciplinaryRecord(ctx context.Context, userID, studentID int64, req *dto.CreateDisciplinaryRecordRequest) (*dto.DisciplinaryRecordResponse, error)
	ListDisciplinaryRecords(ctx context.Context, userID, studentID int64) ([]dto.DisciplinaryRecordResponse, error)
	UpdateDisciplinaryRecord(ctx context.Context, userID, recordID int64, req *dto.UpdateDisciplinaryRecordRequest) (*dto.DisciplinaryRecordResponse, error)
	DeleteDisciplinaryRecord(ctx context.Context, userID, recordID int64) error
}

// recordServiceImpl implements the RecordService interface
type recordServiceImpl struct {
	noteRepo  *repositories.PositiveNoteRepository
	discRepo  *repositories.DisciplinaryRepository
	staffRepo *repositories.StaffRepository
	authz     *auth.AuthorizationService
}

// NewRecordService creates a new record service instance
func NewRecordService(repos *repositories.Repositories, authz *auth.AuthorizationService) RecordService {
	return &recordServiceImpl{
		noteRepo:  repos.PositiveNoteRepository,
		discRepo:  repos.DisciplinaryRepository,
		staffRepo: repos.StaffRepository,
		authz:     authz,
	}
}

// CreatePositiveNote records a commendation for a homeroom student. The date
// defaults to today when omitted.
func (s *recordServiceImpl) CreatePositiveNote(ctx context.Context, userID, studentID int64, req *dto.CreatePositiveNoteRequest) (*dto.PositiveNoteResponse, error) {
	staff, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	date, err := parseRecordDate(req.Date)
	if err != nil {
		return nil, err
	}

	note := &models.PositiveNote{
		StudentID: studentID,
		StaffID:   staff.ID,
		Note:      req.Note,
		Category:  req.Category,
		Date:      date,
	}
	id, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	created, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPositiveNoteResponse(created, staff.Name)
	return &resp, nil
}

// ListPositiveNotes returns a homeroom student's commendations, newest first.
func (s *recordServiceImpl) ListPositiveNotes(ctx context.Context, userID, studentID int64) ([]dto.PositiveNoteResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	names, err := s.staffNamesForNotes(ctx, notes)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PositiveNoteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, dto.NewPositiveNoteResponse(n, names[n.StaffID]))
	}
	return result, nil
}

// UpdatePositiveNote edits a commendation. The student must still be in the
// caller's homeroom and only the staff member who recorded it may change it.
func (s *recordServiceImpl) UpdatePositiveNote(ctx context.Context, userID, noteID int64, req *dto.UpdatePositiveNoteRequest) (*dto.PositiveNoteResponse, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	staff, err := s.authz.RequireRecordAuthor(ctx, userID, note.StudentID, note.StaffID)
	if err != nil {
		return nil, err
	}

	if req.Note != nil {
		note.Note = *req.Note
	}
	if req.Category != nil {
		note.Category = req.Category
	}
	if req.Date != nil {
		date, err := parseRecordDate(*req.Date)
		if err != nil {
			return nil, err
		}
		note.Date = date
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	resp := dto.NewPositiveNoteResponse(note, staff.Name)
	return &resp, nil
}

// DeletePositiveNote removes a commendation recorded by the caller.
func (s *recordServiceImpl) DeletePositiveNote(ctx context.Context, userID, noteID int64) error {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if _, err := s.authz.RequireRecordAuthor(ctx, userID, note.StudentID, note.StaffID); err != nil {
		return err
	}
	return s.noteRepo.Delete(ctx, noteID)
}

// CreateDisciplinaryRecord records an incident for a homeroom student. The
// public incidentDescription and incidentDate fields land in the stored
// description and date columns.
func (s *recordServiceImpl) CreateDisciplinaryRecord(ctx context.Context, userID, studentID int64, req *dto.CreateDisciplinaryRecordRequest) (*dto.DisciplinaryRecordResponse, error) {
	staff, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	date, err := parseRecordDate(req.IncidentDate)
	if err != nil {
		return nil, err
	}

	record := &models.DisciplinaryRecord{
		StudentID:    studentID,
		StaffID:      staff.ID,
		IncidentType: req.IncidentType,
		Description:  req.IncidentDescription,
		ActionTaken:  req.ActionTaken,
		Severity:     models.DisciplinarySeverity(req.Severity),
		Date:         date,
	}
	id, err := s.discRepo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	created, err := s.discRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewDisciplinaryRecordResponse(created, staff.Name)
	return &resp, nil
}

// ListDisciplinaryRecords returns a homeroom student's incidents, newest first.
func (s *recordServiceImpl) ListDisciplinaryRecords(ctx context.Context, userID, studentID int64) ([]dto.DisciplinaryRecordResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.discRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	names, err := s.staffNamesForRecords(ctx, records)
	if err != nil {
		return nil, err
	}

	result := make([]dto.DisciplinaryRecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, dto.NewDisciplinaryRecordResponse(rec, names[rec.StaffID]))
	}
	return result, nil
}

// UpdateDisciplinaryRecord edits an incident. The student must still be in
// the caller's homeroom and only the staff member who recorded it may change it.
func (s *recordServiceImpl) UpdateDisciplinaryRecord(ctx context.Context, userID, recordID int64, req *dto.UpdateDisciplinaryRecordRequest) (*dto.DisciplinaryRecordResponse, error) {
	record, err := s.discRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	staff, err := s.authz.RequireRecordAuthor(ctx, userID, record.StudentID, record.StaffID)
	if err != nil {
		return nil, err
	}

	if req.IncidentType != nil {
		record.IncidentType = *req.IncidentType
	}
	if req.IncidentDescription != nil {
		record.Description = *req.IncidentDescription
	}
	if req.ActionTaken != nil {
		record.ActionTaken = req.ActionTaken
	}
	if req.Severity != nil {
		record.Severity = models.DisciplinarySeverity(*req.Severity)
	}
	if req.IncidentDate != nil {
		date, err := parseRecordDate(*req.IncidentDate)
		if err != nil {
			return nil, err
		}
		record.Date = date
	}

	if err := s.discRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	resp := dto.NewDisciplinaryRecordResponse(record, staff.Name)
	return &resp, nil
}

// DeleteDisciplinaryRecord removes an incident recorded by the caller.
func (s *recordServiceImpl) DeleteDisciplinaryRecord(ctx context.Context, userID, recordID int64) error {
	record, err := s.discRepo.GetByID(ctx, recordID)
	if err != nil {
		return err
	}
	if _, err := s.authz.RequireRecordAuthor(ctx, userID, record.StudentID, record.StaffID); err != nil {
		return err
	}
	return s.discRepo.Delete(ctx, recordID)
}

func (s *recordServiceImpl) staffNamesForNotes(ctx context.Context, notes []*models.PositiveNote) (map[int64]string, error) {
	if len(notes) == 0 {
		return map[int64]string{}, nil
	}
	ids := make([]int64, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.StaffID)
	}
	return s.staffRepo.GetNamesByIDs(ctx, ids)
}

func (s *recordServiceImpl) staffNamesForRecords(ctx context.Context, records []*models.DisciplinaryRecord) (map[int64]string, error) {
	if len(records) == 0 {
		return map[int64]string{}, nil
	}
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.StaffID)
	}
	return s.staffRepo.GetNamesByIDs(ctx, ids)
}
