package dto

import "strings"

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
}

func (r *LoginRequest) Normalize() map[string]string {
	r.Email = normalizeEmail(r.Email)
	return nil
}

// RegisterRequest is the text part of POST /register. The photo travels
// separately as a multipart file.
type RegisterRequest struct {
	Email              string `form:"email" json:"email" validate:"required,email"`
	Name               string `form:"name" json:"name" validate:"required,min=2,alphaspace"`
	Password           string `form:"password" json:"password" validate:"required,min=6,password-strength"`
	PasswordRepeat     string `form:"password_repeat" json:"password_repeat" validate:"required,eqfield=Password"`
	YearsExperienceRaw string `form:"years_experience" json:"years_experience"`
	Specialty          string `form:"specialty" json:"specialty" validate:"required,min=2,alphaspace"`

	// YearsExperience is filled by Normalize.
	YearsExperience int `form:"-" json:"-"`
}

func (r *RegisterRequest) Normalize() map[string]string {
	r.Email = normalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Specialty = strings.TrimSpace(r.Specialty)

	years, msg := parseYears(r.YearsExperienceRaw, 0)
	if msg != "" {
		return map[string]string{"years_experience": msg}
	}
	r.YearsExperience = years
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
