package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
)

func TestCheckRecordMutable(t *testing.T) {
	svc := &AuthorizationService{}
	homeroomID := int64(3)
	otherHomeroomID := int64(9)

	tests := []struct {
		name          string
		staff         models.Staff
		student       models.Student
		authorStaffID int64
		wantErr       error
	}{
		{
			name:          "homeroom owner who authored the record may mutate it",
			staff:         models.Staff{ID: 3},
			student:       models.Student{HomeroomTeacherID: &homeroomID},
			authorStaffID: 3,
		},
		{
			name:          "author loses access once the student moves to another homeroom",
			staff:         models.Staff{ID: 3},
			student:       models.Student{HomeroomTeacherID: &otherHomeroomID},
			authorStaffID: 3,
			wantErr:       apperrors.ErrNotHomeroomOwner,
		},
		{
			name:          "author loses access when the student has no homeroom teacher",
			staff:         models.Staff{ID: 3},
			student:       models.Student{},
			authorStaffID: 3,
			wantErr:       apperrors.ErrNotHomeroomOwner,
		},
		{
			name:          "homeroom owner may not mutate a colleague's record",
			staff:         models.Staff{ID: 3},
			student:       models.Student{HomeroomTeacherID: &homeroomID},
			authorStaffID: 5,
			wantErr:       apperrors.ErrNotRecordAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckRecordMutable(&tt.staff, &tt.student, tt.authorStaffID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckAchievementMutable(t *testing.T) {
	svc := &AuthorizationService{}
	verifierID := int64(7)

	tests := []struct {
		name        string
		achievement models.Achievement
		userID      int64
		wantErr     error
	}{
		{
			name:        "pending achievements are open to everyone",
			achievement: models.Achievement{Status: models.AchievementPending},
			userID:      1,
		},
		{
			name:        "rejected achievements are open to everyone",
			achievement: models.Achievement{Status: models.AchievementRejected},
			userID:      1,
		},
		{
			name:        "verified achievement is open to its verifier",
			achievement: models.Achievement{Status: models.AchievementVerified, VerifiedBy: &verifierID},
			userID:      7,
		},
		{
			name:        "verified achievement is locked for others",
			achievement: models.Achievement{Status: models.AchievementVerified, VerifiedBy: &verifierID},
			userID:      8,
			wantErr:     apperrors.ErrAchievementVerified,
		},
		{
			name:        "verified achievement without a recorded verifier is locked",
			achievement: models.Achievement{Status: models.AchievementVerified},
			userID:      7,
			wantErr:     apperrors.ErrAchievementVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckAchievementMutable(&tt.achievement, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
