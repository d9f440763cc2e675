package models

import "time"

// AchievementStatus represents the verification state of an achievement
type AchievementStatus string

const (
	AchievementPending  AchievementStatus = "pending"
	AchievementVerified AchievementStatus = "verified"
	AchievementRejected AchievementStatus = "rejected"
)

// AchievementTypes lists the accepted achievement classifications
var AchievementTypes = []string{
	"academic_excellence",
	"perfect_attendance",
	"sports_achievement",
	"arts_achievement",
	"leadership",
	"community_service",
	"character_award",
	"improvement",
	"participation",
	"graduation",
}

// AchievementLevels lists the accepted competition levels
var AchievementLevels = []string{
	"school",
	"district",
	"regional",
	"national",
	"international",
}

// IsValidAchievementType reports whether t is an accepted achievement type
func IsValidAchievementType(t string) bool {
	for _, v := range AchievementTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsValidAchievementLevel reports whether l is an accepted achievement level
func IsValidAchievementLevel(l string) bool {
	for _, v := range AchievementLevels {
		if v == l {
			return true
		}
	}
	return false
}

// Achievement defines a student achievement based on the 'student_achievements' table.
// Once a row reaches the verified status only the verifying user may change it.
type Achievement struct {
	ID                  int64             `json:"id" db:"id" example:"1"`
	StudentID           int64             `json:"studentId" db:"student_id" example:"1"`
	AchievementType     string            `json:"achievementType" db:"achievement_type" example:"sports_achievement"`
	AchievementName     string            `json:"achievementName" db:"achievement_name" example:"Juara 1 Futsal"`
	Description         *string           `json:"description,omitempty" db:"description"`
	DateAchieved        time.Time         `json:"dateAchieved" db:"date_achieved"`
	CriteriaMet         *string           `json:"criteriaMet,omitempty" db:"criteria_met"`
	Level               string            `json:"level" db:"level" example:"district"`
	ScoreValue          *float64          `json:"scoreValue,omitempty" db:"score_value"`
	IssuingOrganization *string           `json:"issuingOrganization,omitempty" db:"issuing_organization"`
	Status              AchievementStatus `json:"status" db:"status" example:"pending"`
	VerifiedBy          *int64            `json:"verifiedBy,omitempty" db:"verified_by"` // User ID of the verifier (nullable)
	VerifiedAt          *time.Time        `json:"verifiedAt,omitempty" db:"verified_at"`
	VerificationNotes   *string           `json:"verificationNotes,omitempty" db:"verification_notes"`
	CreatedAt           time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time         `json:"updatedAt" db:"updated_at"`
}
