package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sekolahku/sekolahku/internal/app/models"
)

func TestNewDisciplinaryRecordResponseFieldNames(t *testing.T) {
	action := "parents called"
	record := &models.DisciplinaryRecord{
		ID:           4,
		StudentID:    1,
		StaffID:      2,
		IncidentType: "late_arrival",
		Description:  "arrived 40 minutes late without a note",
		ActionTaken:  &action,
		Severity:     models.SeverityMinor,
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC),
	}

	resp := NewDisciplinaryRecordResponse(record, "Siti Rahma")

	// The stored description and date surface under their incident names.
	assert.Equal(t, "arrived 40 minutes late without a note", resp.IncidentDescription)
	assert.Equal(t, "2025-03-10", resp.IncidentDate)
	assert.Equal(t, "minor", resp.Severity)
	assert.Equal(t, "Siti Rahma", resp.StaffName)
	assert.Equal(t, "2025-03-10 09:15", resp.CreatedAt)
}

func TestNewAchievementResponseVerification(t *testing.T) {
	verifierID := int64(9)
	verifiedAt := time.Date(2025, 2, 21, 8, 0, 0, 0, time.UTC)
	verifierName := "Kepala Sekolah"

	achievement := &models.Achievement{
		ID:              5,
		StudentID:       1,
		AchievementType: "sports_achievement",
		AchievementName: "Juara 1 Futsal",
		DateAchieved:    time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		Level:           "district",
		Status:          models.AchievementVerified,
		VerifiedBy:      &verifierID,
		VerifiedAt:      &verifiedAt,
	}

	resp := NewAchievementResponse(achievement, &verifierName)

	assert.Equal(t, "verified", resp.Status)
	assert.Equal(t, "2025-02-20", resp.DateAchieved)
	if assert.NotNil(t, resp.VerifiedBy) {
		assert.Equal(t, int64(9), *resp.VerifiedBy)
	}
	if assert.NotNil(t, resp.VerifierName) {
		assert.Equal(t, "Kepala Sekolah", *resp.VerifierName)
	}
	if assert.NotNil(t, resp.VerifiedAt) {
		assert.Equal(t, "2025-02-21 08:00", *resp.VerifiedAt)
	}
}

func TestNewAchievementResponsePending(t *testing.T) {
	achievement := &models.Achievement{
		ID:              6,
		StudentID:       1,
		AchievementType: "academic_excellence",
		AchievementName: "Olimpiade Matematika",
		DateAchieved:    time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Level:           "school",
		Status:          models.AchievementPending,
	}

	resp := NewAchievementResponse(achievement, nil)

	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.VerifiedBy)
	assert.Nil(t, resp.VerifierName)
	assert.Nil(t, resp.VerifiedAt)
}
