package services

import (
	"context"
	"errors"

	"skaters_backend/internal/email"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/models"
	"skaters_backend/internal/repositories"
	"skaters_backend/pkg/apperrors"
)

type AdminService interface {
	ListSkaters(ctx context.Context) ([]models.Skater, error)
	// SetApproval stores the approval flag and notifies the skater when it
	// goes from not approved to approved.
	SetApproval(ctx context.Context, id uint, approved bool) (*models.Skater, error)
}

type AdminServiceImpl struct {
	skaterRepo repositories.SkaterRepository
	notifier   email.Notifier
}

func NewAdminService(skaterRepo repositories.SkaterRepository, notifier email.Notifier) AdminService {
	if notifier == nil {
		notifier = email.NoopNotifier{}
	}
	return &AdminServiceImpl{
		skaterRepo: skaterRepo,
		notifier:   notifier,
	}
}

func (s *AdminServiceImpl) ListSkaters(ctx context.Context) ([]models.Skater, error) {
	skaters, err := s.skaterRepo.ListAll(ctx, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skaters, nil
}

func (s *AdminServiceImpl) SetApproval(ctx context.Context, id uint, approved bool) (*models.Skater, error) {
	skater, err := s.skaterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if skater == nil {
		return nil, apperrors.ErrSkaterNotFound
	}
	wasApproved := skater.Approved

	update := models.SkaterUpdate{Approved: &approved}
	if err := s.skaterRepo.UpdateFields(ctx, id, update); err != nil {
		if errors.Is(err, repositories.ErrSkaterNotFound) {
			return nil, apperrors.ErrSkaterNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	update.Apply(skater)

	logger.CtxInfo(ctx, "approval changed", "skater_id", id, "approved", approved)

	if approved && !wasApproved {
		// Mail delivery never fails the approval itself.
		if err := s.notifier.NotifyApproval(ctx, skater); err != nil {
			logger.CtxWithError(ctx, "approval notification failed", err, "skater_id", id)
		}
	}
	return skater, nil
}
