package database

import (
	"context"
	"errors"
	"fmt"

	"skaters_backend/internal/auth"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/models"
	"skaters_backend/internal/repositories"
)

// SeedAdmin creates the administrator account when it does not exist yet.
// Without a password nothing is created and the admin has to register
// through the normal form.
func SeedAdmin(ctx context.Context, repo repositories.SkaterRepository, email, password string) error {
	if email == "" || password == "" {
		logger.Warn("FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check for admin: %w", err)
	}
	if existing != nil {
		logger.Info("Admin already exists. Skipping creation.", "email", email)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Skater{
		Email:           email,
		Name:            "Administrator",
		PasswordHash:    hash,
		YearsExperience: 0,
		Specialty:       "Administration",
		Approved:        true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info("Created admin account", "email", email)
	return nil
}
