package services

import (
	"context"
	"errors"

	"skaters_backend/internal/logger"
	"skaters_backend/internal/models"
	"skaters_backend/internal/repositories"
	"skaters_backend/internal/services/dto"
	"skaters_backend/pkg/apperrors"
)

type SkaterService interface {
	// ListPublic returns every skater with approved ones first.
	ListPublic(ctx context.Context) ([]models.Skater, error)
	GetProfile(ctx context.Context, id uint) (*models.Skater, error)
	// UpdateProfile changes name, years and specialty only. req must already be validated.
	UpdateProfile(ctx context.Context, id uint, req *dto.ProfileUpdateRequest) (*models.Skater, error)
}

type SkaterServiceImpl struct {
	skaterRepo repositories.SkaterRepository
}

func NewSkaterService(skaterRepo repositories.SkaterRepository) SkaterService {
	return &SkaterServiceImpl{skaterRepo: skaterRepo}
}

func (s *SkaterServiceImpl) ListPublic(ctx context.Context) ([]models.Skater, error) {
	skaters, err := s.skaterRepo.ListAll(ctx, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skaters, nil
}

func (s *SkaterServiceImpl) GetProfile(ctx context.Context, id uint) (*models.Skater, error) {
	skater, err := s.skaterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if skater == nil {
		return nil, apperrors.ErrSkaterNotFound
	}
	return skater, nil
}

func (s *SkaterServiceImpl) UpdateProfile(ctx context.Context, id uint, req *dto.ProfileUpdateRequest) (*models.Skater, error) {
	if err := s.skaterRepo.UpdateFields(ctx, id, req.ToUpdate()); err != nil {
		if errors.Is(err, repositories.ErrSkaterNotFound) {
			return nil, apperrors.ErrSkaterNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "skater_id", id)
	return s.GetProfile(ctx, id)
}
