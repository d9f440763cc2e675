package dto

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"guru@sekolahku.sch.id"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// LoginResponse represents a successful login result
type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	TokenType   string           `json:"tokenType" example:"Bearer"`
	ExpiresIn   int              `json:"expiresIn" example:"3600"` // Seconds until the access token expires
	User        *ProfileResponse `json:"user"`
}

// ProfileResponse represents the authenticated principal
type ProfileResponse struct {
	ID            int64   `json:"id" example:"1"`
	Email         string  `json:"email" example:"guru@sekolahku.sch.id"`
	Role          string  `json:"role" example:"TEACHER"`
	StaffID       *int64  `json:"staffId,omitempty" example:"4"`
	Name          *string `json:"name,omitempty" example:"Siti Rahma"`
	Position      *string `json:"position,omitempty" example:"Guru Matematika"`
	HomeroomClass *string `json:"homeroomClass,omitempty" example:"7A"`
}
