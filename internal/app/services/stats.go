package services

import (
	"math"

	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
)

// Behavior score weights. Every student starts from a neutral baseline and
// the score is clamped to the 0-100 range.
const (
	behaviorBaseline         = 50
	behaviorPositiveWeight   = 10
	behaviorIncidentWeight   = 5
	behaviorScoreMin         = 0
	behaviorScoreMax         = 100
)

// BehaviorScore derives a 0-100 standing from the counts of positive notes
// and disciplinary records.
func BehaviorScore(positiveCount, disciplinaryCount int) int {
	score := behaviorBaseline + behaviorPositiveWeight*positiveCount - behaviorIncidentWeight*disciplinaryCount
	if score < behaviorScoreMin {
		return behaviorScoreMin
	}
	if score > behaviorScoreMax {
		return behaviorScoreMax
	}
	return score
}

// CompletionPercentage returns completed/total as a percentage rounded to one
// decimal place. A zero total yields 0 rather than NaN.
func CompletionPercentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// BuildClassStats aggregates roster counts for the homeroom view.
func BuildClassStats(students []*models.Student) dto.ClassStats {
	stats := dto.ClassStats{TotalStudents: len(students)}
	seen := make(map[string]bool)
	for _, s := range students {
		switch s.Gender {
		case models.GenderMale:
			stats.MaleCount++
		case models.GenderFemale:
			stats.FemaleCount++
		}
		if s.Status == models.StudentStatusActive {
			stats.ActiveCount++
		}
		if s.Class != "" && !seen[s.Class] {
			seen[s.Class] = true
			stats.Classes = append(stats.Classes, s.Class)
		}
	}
	return stats
}
