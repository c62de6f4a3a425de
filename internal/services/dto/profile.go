package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"skaters_backend/internal/models"
)

// ProfileUpdateRequest is the body of POST /profile. Email and password are
// not part of it.
type ProfileUpdateRequest struct {
	Name               string `form:"name" json:"name" validate:"required,min=2"`
	YearsExperienceRaw string `form:"years_experience" json:"years_experience"`
	Specialty          string `form:"specialty" json:"specialty" validate:"required,min=2"`

	YearsExperience int `form:"-" json:"-"`
}

func (r *ProfileUpdateRequest) Normalize() map[string]string {
	r.Name = strings.TrimSpace(r.Name)
	r.Specialty = strings.TrimSpace(r.Specialty)

	years, msg := parseYears(r.YearsExperienceRaw, 1)
	if msg != "" {
		return map[string]string{"years_experience": msg}
	}
	r.YearsExperience = years
	return nil
}

// ToUpdate converts a normalized request into a store update.
func (r *ProfileUpdateRequest) ToUpdate() models.SkaterUpdate {
	name, years, specialty := r.Name, r.YearsExperience, r.Specialty
	return models.SkaterUpdate{
		Name:            &name,
		YearsExperience: &years,
		Specialty:       &specialty,
	}
}

// ApprovalRequest is the body of the admin approval endpoints. Only the
// literal "true" approves.
type ApprovalRequest struct {
	ID     string       `form:"id" json:"id"`
	Estado ApprovalFlag `form:"estado" json:"estado"`
}

func (r *ApprovalRequest) Approved() bool {
	return strings.TrimSpace(string(r.Estado)) == "true"
}

// ApprovalFlag is the raw "estado" value. JSON clients may send it as a
// string or as a boolean.
type ApprovalFlag string

func (f *ApprovalFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = ApprovalFlag(strconv.FormatBool(b))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("estado must be a string or boolean: %w", err)
	}
	*f = ApprovalFlag(s)
	return nil
}

// parseYears converts form text into a whole number >= min. The second
// result is a violation message, empty on success.
func parseYears(raw string, min int) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "This field is required"
	}
	years, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "Must be a whole number"
	}
	if years < min {
		if min == 0 {
			return 0, "Must not be negative"
		}
		return 0, fmt.Sprintf("Must be at least %d", min)
	}
	return years, ""
}
