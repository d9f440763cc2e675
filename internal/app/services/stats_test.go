package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sekolahku/sekolahku/internal/app/models"
)

func TestBehaviorScore(t *testing.T) {
	tests := []struct {
		name          string
		positive      int
		disciplinary  int
		expectedScore int
	}{
		{name: "no records gives baseline", positive: 0, disciplinary: 0, expectedScore: 50},
		{name: "positive notes raise the score", positive: 3, disciplinary: 0, expectedScore: 80},
		{name: "incidents lower the score", positive: 0, disciplinary: 4, expectedScore: 30},
		{name: "mixed records", positive: 2, disciplinary: 3, expectedScore: 55},
		{name: "clamped at the upper bound", positive: 10, disciplinary: 0, expectedScore: 100},
		{name: "clamped at the lower bound", positive: 0, disciplinary: 20, expectedScore: 0},
		{name: "exactly at the upper bound", positive: 5, disciplinary: 0, expectedScore: 100},
		{name: "exactly at the lower bound", positive: 0, disciplinary: 10, expectedScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedScore, BehaviorScore(tt.positive, tt.disciplinary))
		})
	}
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  float64
	}{
		{name: "zero total is zero, not NaN", completed: 0, total: 0, expected: 0},
		{name: "nothing done", completed: 0, total: 8, expected: 0},
		{name: "everything done", completed: 8, total: 8, expected: 100},
		{name: "rounded to one decimal", completed: 1, total: 3, expected: 33.3},
		{name: "rounds up at the midpoint", completed: 5, total: 8, expected: 62.5},
		{name: "two thirds", completed: 2, total: 3, expected: 66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CompletionPercentage(tt.completed, tt.total), 0.001)
		})
	}
}

func TestBuildClassStats(t *testing.T) {
	students := []*models.Student{
		{Name: "Budi", Gender: models.GenderMale, Class: "7A", Status: models.StudentStatusActive},
		{Name: "Ani", Gender: models.GenderFemale, Class: "7A", Status: models.StudentStatusActive},
		{Name: "Citra", Gender: models.GenderFemale, Class: "7B", Status: models.StudentStatusTransferred},
	}

	stats := BuildClassStats(students)

	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.MaleCount)
	assert.Equal(t, 2, stats.FemaleCount)
	assert.Equal(t, 2, stats.ActiveCount)
	assert.ElementsMatch(t, []string{"7A", "7B"}, stats.Classes)
}

func TestBuildClassStatsEmptyRoster(t *testing.T) {
	stats := BuildClassStats(nil)

	assert.Equal(t, 0, stats.TotalStudents)
	assert.Empty(t, stats.Classes)
}
