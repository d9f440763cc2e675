package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestApplyStudentUpdateMergesFields(t *testing.T) {
	student := &models.Student{
		Name:      "Budi Santoso",
		Gender:    models.GenderMale,
		Class:     "7A",
		EntryYear: 2023,
		Status:    models.StudentStatusActive,
	}

	newYear := 2024
	req := &dto.UpdateStudentRequest{
		Name:       strPtr("Budi S. Santoso"),
		Class:      strPtr("8B"),
		EntryYear:  &newYear,
		Status:     strPtr("transferred"),
		ParentName: strPtr("Slamet Santoso"),
	}

	require.NoError(t, applyStudentUpdate(student, req))

	assert.Equal(t, "Budi S. Santoso", student.Name)
	assert.Equal(t, "8B", student.Class)
	assert.Equal(t, 2024, student.EntryYear)
	assert.Equal(t, models.StudentStatus("transferred"), student.Status)
	assert.Equal(t, "Slamet Santoso", *student.ParentName)
	// Untouched fields keep their value.
	assert.Equal(t, models.GenderMale, student.Gender)
}

func TestApplyStudentUpdateLeavesOmittedFields(t *testing.T) {
	student := &models.Student{Name: "Siti Rahma", Class: "9C"}

	require.NoError(t, applyStudentUpdate(student, &dto.UpdateStudentRequest{}))

	assert.Equal(t, "Siti Rahma", student.Name)
	assert.Equal(t, "9C", student.Class)
}

func TestApplyStudentUpdateBirthDate(t *testing.T) {
	existing := time.Date(2010, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("valid date is parsed", func(t *testing.T) {
		student := &models.Student{}
		req := &dto.UpdateStudentRequest{BirthDate: strPtr("2011-01-30")}

		require.NoError(t, applyStudentUpdate(student, req))
		require.NotNil(t, student.BirthDate)
		assert.Equal(t, 2011, student.BirthDate.Year())
	})

	t.Run("empty string clears the date", func(t *testing.T) {
		student := &models.Student{BirthDate: &existing}
		req := &dto.UpdateStudentRequest{BirthDate: strPtr("")}

		require.NoError(t, applyStudentUpdate(student, req))
		assert.Nil(t, student.BirthDate)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		student := &models.Student{BirthDate: &existing}
		req := &dto.UpdateStudentRequest{BirthDate: strPtr("17-05-2010")}

		err := applyStudentUpdate(student, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, &existing, student.BirthDate)
	})
}
