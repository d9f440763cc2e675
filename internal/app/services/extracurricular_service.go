package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sekolahku/sekolahku/internal/app/auth"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
)

// ExtracurricularService defines the interface for activity participation
// operations on homeroom students
type ExtracurricularService interface {
	ListActivities(ctx context.Context) ([]dto.ExtracurricularResponse, error)
	CreateHistory(ctx context.Context, userID, studentID int64, req *dto.CreateExtracurricularHistoryRequest) (*dto.ExtracurricularHistoryResponse, error)
	ListHistory(ctx context.Context, userID, studentID int64) ([]dto.ExtracurricularHistoryResponse, error)
	UpdateHistory(ctx context.Context, userID, historyID int64, req *dto.UpdateExtracurricularHistoryRequest) (*dto.ExtracurricularHistoryResponse, error)
	DeleteHistory(ctx context.Context, userID, historyID int64) error
}

// extracurricularServiceImpl implements the ExtracurricularService interface
type extracurricularServiceImpl struct {
	extraRepo   *repositories.ExtracurricularRepository
	studentRepo *repositories.StudentRepository
	authz       *auth.AuthorizationService
}

// NewExtracurricularService creates a new extracurricular service instance
func NewExtracurricularService(repos *repositories.Repositories, authz *auth.AuthorizationService) ExtracurricularService {
	return &extracurricularServiceImpl{
		extraRepo:   repos.ExtracurricularRepository,
		studentRepo: repos.StudentRepository,
		authz:       authz,
	}
}

// ListActivities returns the school's activity catalog.
func (s *extracurricularServiceImpl) ListActivities(ctx context.Context) ([]dto.ExtracurricularResponse, error) {
	activities, err := s.extraRepo.GetAllActivities(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ExtracurricularResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, dto.NewExtracurricularResponse(a))
	}
	return result, nil
}

// validateDateOrder rejects an end date that is on or before the start date.
func validateDateOrder(start time.Time, end *time.Time) error {
	if end != nil && !end.After(start) {
		return apperrors.ErrEndBeforeStart
	}
	return nil
}

// CreateHistory records a participation period for a homeroom student.
func (s *extracurricularServiceImpl) CreateHistory(ctx context.Context, userID, studentID int64, req *dto.CreateExtracurricularHistoryRequest) (*dto.ExtracurricularHistoryResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	activity, err := s.extraRepo.GetActivityByID(ctx, req.ExtracurricularID)
	if err != nil {
		return nil, err
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidationFailed)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		ed, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date", apperrors.ErrValidationFailed)
		}
		endDate = &ed
	}
	if err := validateDateOrder(startDate, endDate); err != nil {
		return nil, err
	}

	history := &models.ExtracurricularHistory{
		StudentID:         studentID,
		ExtracurricularID: activity.ID,
		AcademicYear:      req.AcademicYear,
		Role:              req.Role,
		StartDate:         startDate,
		EndDate:           endDate,
		PerformanceNotes:  req.PerformanceNotes,
	}
	id, err := s.extraRepo.CreateHistory(ctx, history)
	if err != nil {
		return nil, err
	}

	created, err := s.extraRepo.GetHistoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewExtracurricularHistoryResponse(created, activity.Name)
	return &resp, nil
}

// ListHistory returns a homeroom student's participation periods.
func (s *extracurricularServiceImpl) ListHistory(ctx context.Context, userID, studentID int64) ([]dto.ExtracurricularHistoryResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	history, err := s.extraRepo.ListHistoryByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ExtracurricularHistoryResponse, 0, len(history))
	for _, h := range history {
		name := ""
		if h.Extracurricular != nil {
			name = h.Extracurricular.Name
		}
		result = append(result, dto.NewExtracurricularHistoryResponse(h, name))
	}
	return result, nil
}

// UpdateHistory edits a participation period of a homeroom student.
func (s *extracurricularServiceImpl) UpdateHistory(ctx context.Context, userID, historyID int64, req *dto.UpdateExtracurricularHistoryRequest) (*dto.ExtracurricularHistoryResponse, error) {
	history, err := s.extraRepo.GetHistoryByID(ctx, historyID)
	if err != nil {
		return nil, err
	}
	_, _, err = s.authz.RequireHomeroomOwner(ctx, userID, history.StudentID)
	if err != nil {
		return nil, err
	}

	activityName := ""
	if history.Extracurricular != nil {
		activityName = history.Extracurricular.Name
	}
	if req.ExtracurricularID != nil {
		activity, err := s.extraRepo.GetActivityByID(ctx, *req.ExtracurricularID)
		if err != nil {
			return nil, err
		}
		history.ExtracurricularID = activity.ID
		activityName = activity.Name
	}
	if req.AcademicYear != nil {
		history.AcademicYear = *req.AcademicYear
	}
	if req.Role != nil {
		history.Role = req.Role
	}
	if req.StartDate != nil {
		sd, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidationFailed)
		}
		history.StartDate = sd
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			history.EndDate = nil
		} else {
			ed, err := dto.ParseDate(*req.EndDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid end date", apperrors.ErrValidationFailed)
			}
			history.EndDate = &ed
		}
	}
	if req.PerformanceNotes != nil {
		history.PerformanceNotes = req.PerformanceNotes
	}

	if err := validateDateOrder(history.StartDate, history.EndDate); err != nil {
		return nil, err
	}

	if err := s.extraRepo.UpdateHistory(ctx, history); err != nil {
		return nil, err
	}
	resp := dto.NewExtracurricularHistoryResponse(history, activityName)
	return &resp, nil
}

// DeleteHistory removes a participation period of a homeroom student.
func (s *extracurricularServiceImpl) DeleteHistory(ctx context.Context, userID, historyID int64) error {
	history, err := s.extraRepo.GetHistoryByID(ctx, historyID)
	if err != nil {
		return err
	}
	_, _, err = s.authz.RequireHomeroomOwner(ctx, userID, history.StudentID)
	if err != nil {
		return err
	}
	return s.extraRepo.DeleteHistory(ctx, historyID)
}
