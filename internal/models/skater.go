package models

import "time"

// Skater is a registered directory member. Approved gates public visibility
// and only changes through the admin path.
type Skater struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	YearsExperience int       `gorm:"not null" json:"years_experience"`
	Specialty       string    `gorm:"size:255;not null" json:"specialty"`
	PhotoPath       string    `gorm:"size:512" json:"photo_path,omitempty"`
	Approved        bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SkaterUpdate lists the only columns that may change after registration.
// Nil fields are left as they are.
type SkaterUpdate struct {
	Name            *string
	YearsExperience *int
	Specialty       *string
	Approved        *bool
}

// IsEmpty reports whether the update would change nothing.
func (u SkaterUpdate) IsEmpty() bool {
	return u.Name == nil && u.YearsExperience == nil && u.Specialty == nil && u.Approved == nil
}

// Columns returns the update as a column → value map.
func (u SkaterUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.YearsExperience != nil {
		cols["years_experience"] = *u.YearsExperience
	}
	if u.Specialty != nil {
		cols["specialty"] = *u.Specialty
	}
	if u.Approved != nil {
		cols["approved"] = *u.Approved
	}
	return cols
}

// Apply copies the set fields onto s.
func (u SkaterUpdate) Apply(s *Skater) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.YearsExperience != nil {
		s.YearsExperience = *u.YearsExperience
	}
	if u.Specialty != nil {
		s.Specialty = *u.Specialty
	}
	if u.Approved != nil {
		s.Approved = *u.Approved
	}
}
