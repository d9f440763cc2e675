package services

import (
	"context"
	"time"

	"github.com/sekolahku/sekolahku/internal/app/auth"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
)

// AchievementService defines the interface for achievement operations.
// Teachers submit achievements for their homeroom students; verification is
// an admin decision, and verified rows are frozen for everyone but the
// verifier.
type AchievementService interface {
	Create(ctx context.Context, userID, studentID int64, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error)
	ListByStudent(ctx context.Context, userID, studentID int64) ([]dto.AchievementResponse, error)
	Update(ctx context.Context, userID, achievementID int64, req *dto.UpdateAchievementRequest) (*dto.AchievementResponse, error)
	Delete(ctx context.Context, userID, achievementID int64) error

	ListPending(ctx context.Context) ([]dto.AchievementResponse, error)
	Verify(ctx context.Context, verifierUserID, achievementID int64, req *dto.VerifyAchievementRequest) (*dto.AchievementResponse, error)
}

// achievementServiceImpl implements the AchievementService interface
type achievementServiceImpl struct {
	achieveRepo *repositories.AchievementRepository
	staffRepo   *repositories.StaffRepository
	authz       *auth.AuthorizationService
}

// NewAchievementService creates a new achievement service instance
func NewAchievementService(repos *repositories.Repositories, authz *auth.AuthorizationService) AchievementService {
	return &achievementServiceImpl{
		achieveRepo: repos.AchievementRepository,
		staffRepo:   repos.StaffRepository,
		authz:       authz,
	}
}

func validateAchievementKind(achievementType, level string) error {
	if !models.IsValidAchievementType(achievementType) {
		return apperrors.ErrInvalidAchievementType
	}
	if !models.IsValidAchievementLevel(level) {
		return apperrors.ErrInvalidAchievementLevel
	}
	return nil
}

func (s *achievementServiceImpl) verifierName(ctx context.Context, a *models.Achievement) *string {
	if a.VerifiedBy == nil {
		return nil
	}
	staff, err := s.staffRepo.GetByUserID(ctx, *a.VerifiedBy)
	if err != nil {
		return nil
	}
	return &staff.Name
}

// Create submits a pending achievement for a homeroom student.
func (s *achievementServiceImpl) Create(ctx context.Context, userID, studentID int64, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}
	if err := validateAchievementKind(req.AchievementType, req.Level); err != nil {
		return nil, err
	}

	date, err := parseRecordDate(req.DateAchieved)
	if err != nil {
		return nil, err
	}

	achievement := &models.Achievement{
		StudentID:           studentID,
		AchievementType:     req.AchievementType,
		AchievementName:     req.AchievementName,
		Description:         req.Description,
		DateAchieved:        date,
		CriteriaMet:         req.CriteriaMet,
		Level:               req.Level,
		ScoreValue:          req.ScoreValue,
		IssuingOrganization: req.IssuingOrganization,
		Status:              models.AchievementPending,
	}
	id, err := s.achieveRepo.Create(ctx, achievement)
	if err != nil {
		return nil, err
	}

	created, err := s.achieveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewAchievementResponse(created, nil)
	return &resp, nil
}

// ListByStudent returns a homeroom student's achievements.
func (s *achievementServiceImpl) ListByStudent(ctx context.Context, userID, studentID int64) ([]dto.AchievementResponse, error) {
	_, _, err := s.authz.RequireHomeroomOwner(ctx, userID, studentID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achieveRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		result = append(result, dto.NewAchievementResponse(a, s.verifierName(ctx, a)))
	}
	return result, nil
}

// Update edits an achievement of a homeroom student. Verified achievements
// are frozen for everyone but their verifier.
func (s *achievementServiceImpl) Update(ctx context.Context, userID, achievementID int64, req *dto.UpdateAchievementRequest) (*dto.AchievementResponse, error) {
	achievement, err := s.achieveRepo.GetByID(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	_, _, err = s.authz.RequireHomeroomOwner(ctx, userID, achievement.StudentID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CheckAchievementMutable(achievement, userID); err != nil {
		return nil, err
	}

	if req.AchievementType != nil {
		achievement.AchievementType = *req.AchievementType
	}
	if req.AchievementName != nil {
		achievement.AchievementName = *req.AchievementName
	}
	if req.Description != nil {
		achievement.Description = req.Description
	}
	if req.DateAchieved != nil {
		date, err := parseRecordDate(*req.DateAchieved)
		if err != nil {
			return nil, err
		}
		achievement.DateAchieved = date
	}
	if req.CriteriaMet != nil {
		achievement.CriteriaMet = req.CriteriaMet
	}
	if req.Level != nil {
		achievement.Level = *req.Level
	}
	if req.ScoreValue != nil {
		achievement.ScoreValue = req.ScoreValue
	}
	if req.IssuingOrganization != nil {
		achievement.IssuingOrganization = req.IssuingOrganization
	}

	if err := validateAchievementKind(achievement.AchievementType, achievement.Level); err != nil {
		return nil, err
	}

	if err := s.achieveRepo.Update(ctx, achievement); err != nil {
		return nil, err
	}
	resp := dto.NewAchievementResponse(achievement, s.verifierName(ctx, achievement))
	return &resp, nil
}

// Delete removes an achievement of a homeroom student. The verified freeze
// applies to deletion too.
func (s *achievementServiceImpl) Delete(ctx context.Context, userID, achievementID int64) error {
	achievement, err := s.achieveRepo.GetByID(ctx, achievementID)
	if err != nil {
		return err
	}
	_, _, err = s.authz.RequireHomeroomOwner(ctx, userID, achievement.StudentID)
	if err != nil {
		return err
	}
	if err := s.authz.CheckAchievementMutable(achievement, userID); err != nil {
		return err
	}
	return s.achieveRepo.Delete(ctx, achievementID)
}

// ListPending returns the verification queue in submission order.
func (s *achievementServiceImpl) ListPending(ctx context.Context) ([]dto.AchievementResponse, error) {
	achievements, err := s.achieveRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		result = append(result, dto.NewAchievementResponse(a, nil))
	}
	return result, nil
}

// Verify records the verification decision. The deciding user becomes the
// verifier and from then on the only principal allowed to change the row.
func (s *achievementServiceImpl) Verify(ctx context.Context, verifierUserID, achievementID int64, req *dto.VerifyAchievementRequest) (*dto.AchievementResponse, error) {
	achievement, err := s.achieveRepo.GetByID(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CheckAchievementMutable(achievement, verifierUserID); err != nil {
		return nil, err
	}

	now := time.Now()
	achievement.Status = models.AchievementStatus(req.Status)
	achievement.VerifiedBy = &verifierUserID
	achievement.VerifiedAt = &now
	achievement.VerificationNotes = req.VerificationNotes

	if err := s.achieveRepo.SetVerification(ctx, achievement); err != nil {
		return nil, err
	}
	resp := dto.NewAchievementResponse(achievement, s.verifierName(ctx, achievement))
	return &resp, nil
}
