package auth

import (
	"strings"

	"skaters_backend/internal/models"
)

// IsAdmin reports whether s is the configured administrator identity.
func IsAdmin(s *models.Skater, adminEmail string) bool {
	if s == nil || adminEmail == "" {
		return false
	}
	return strings.EqualFold(s.Email, adminEmail)
}
