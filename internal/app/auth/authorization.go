package auth

import (
	"context"

	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// AuthorizationService handles ownership and scope checks for teacher
// operations. Every guard resolves the caller's staff profile from the
// authenticated user ID first, so a user without a staff row is rejected
// before any resource lookup.
type AuthorizationService struct {
	staffRepo   *repositories.StaffRepository
	studentRepo *repositories.StudentRepository
	subjectRepo *repositories.SubjectRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	staffRepo *repositories.StaffRepository,
	studentRepo *repositories.StudentRepository,
	subjectRepo *repositories.SubjectRepository,
) *AuthorizationService {
	return &AuthorizationService{
		staffRepo:   staffRepo,
		studentRepo: studentRepo,
		subjectRepo: subjectRepo,
	}
}

// ResolveStaff returns the staff profile linked to the authenticated user.
func (s *AuthorizationService) ResolveStaff(ctx context.Context, userID int64) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving staff profile for user")
		return nil, err
	}
	return staff, nil
}

// RequireHomeroomOwner checks that the caller is the homeroom teacher of the
// student and returns both profiles on success.
func (s *AuthorizationService) RequireHomeroomOwner(ctx context.Context, userID, studentID int64) (*models.Staff, *models.Student, error) {
	staff, err := s.ResolveStaff(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	if student.HomeroomTeacherID == nil || *student.HomeroomTeacherID != staff.ID {
		return nil, nil, apperrors.ErrNotHomeroomOwner
	}
	return staff, student, nil
}

// RequireSubjectAssignee checks that the caller is assigned to teach the
// subject and returns the staff profile on success.
func (s *AuthorizationService) RequireSubjectAssignee(ctx context.Context, userID, subjectID int64) (*models.Staff, error) {
	staff, err := s.ResolveStaff(ctx, userID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.subjectRepo.IsAssigned(ctx, staff.ID, subjectID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperrors.ErrNotSubjectAssignee
	}
	return staff, nil
}

// CheckRecordMutable enforces both access rules on a behavior record: the
// student must still belong to the staff member's homeroom, and the record
// must have been authored by that staff member. A student reassigned to
// another homeroom locks the record for its former teacher.
func (s *AuthorizationService) CheckRecordMutable(staff *models.Staff, student *models.Student, authorStaffID int64) error {
	if student.HomeroomTeacherID == nil || *student.HomeroomTeacherID != staff.ID {
		return apperrors.ErrNotHomeroomOwner
	}
	if staff.ID != authorStaffID {
		return apperrors.ErrNotRecordAuthor
	}
	return nil
}

// RequireRecordAuthor checks that the caller still owns the student's
// homeroom and that their staff profile authored the record identified by
// authorStaffID, returning the staff profile on success.
func (s *AuthorizationService) RequireRecordAuthor(ctx context.Context, userID, studentID, authorStaffID int64) (*models.Staff, error) {
	staff, err := s.ResolveStaff(ctx, userID)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.CheckRecordMutable(staff, student, authorStaffID); err != nil {
		return nil, err
	}
	return staff, nil
}

// CheckAchievementMutable rejects changes to a verified achievement unless
// the caller is the user who verified it.
func (s *AuthorizationService) CheckAchievementMutable(a *models.Achievement, userID int64) error {
	if a.Status != models.AchievementVerified {
		return nil
	}
	if a.VerifiedBy != nil && *a.VerifiedBy == userID {
		return nil
	}
	return apperrors.ErrAchievementVerified
}
