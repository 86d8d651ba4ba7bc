package auth

// TokenRequest exchanges the shared dashboard access code for a staff token
type TokenRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
	Subject    string `json:"subject,omitempty" validate:"omitempty,min=1,max=255"`
}
