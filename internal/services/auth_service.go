package services

import (
	"context"
	"errors"
	"mime/multipart"

	"skaters_backend/internal/auth"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/models"
	"skaters_backend/internal/repositories"
	"skaters_backend/internal/services/dto"
	"skaters_backend/pkg/apperrors"
)

type AuthService interface {
	// Register creates an unapproved skater. req must already be validated.
	Register(ctx context.Context, req *dto.RegisterRequest, photo *multipart.FileHeader) (*models.Skater, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error)
}

// LoginResult is what a successful login hands to the transport layer.
type LoginResult struct {
	Skater  *models.Skater
	Token   string
	IsAdmin bool
}

type AuthServiceImpl struct {
	skaterRepo repositories.SkaterRepository
	photos     PhotoService
	codec      *auth.TokenCodec
	adminEmail string
}

func NewAuthService(
	skaterRepo repositories.SkaterRepository,
	photos PhotoService,
	codec *auth.TokenCodec,
	adminEmail string,
) AuthService {
	return &AuthServiceImpl{
		skaterRepo: skaterRepo,
		photos:     photos,
		codec:      codec,
		adminEmail: adminEmail,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, photo *multipart.FileHeader) (*models.Skater, error) {
	if photo == nil {
		return nil, apperrors.ErrPhotoRequired
	}

	// Checked before the photo is written so a duplicate leaves no file behind.
	existing, err := s.skaterRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	photoPath, err := s.photos.Store(ctx, photo)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	skater := &models.Skater{
		Email:           req.Email,
		Name:            req.Name,
		PasswordHash:    hash,
		YearsExperience: req.YearsExperience,
		Specialty:       req.Specialty,
		PhotoPath:       photoPath,
		Approved:        false,
	}

	if err := s.skaterRepo.Create(ctx, skater); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "skater registered", "skater_id", skater.ID)
	return skater, nil
}

// Login never tells apart an unknown email and a wrong password.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	skater, err := s.skaterRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if skater == nil || !auth.CheckPasswordHash(req.Password, skater.PasswordHash) {
		logger.CtxInfo(ctx, "login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(skater.ID, skater.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "skater logged in", "skater_id", skater.ID)
	return &LoginResult{
		Skater:  skater,
		Token:   token,
		IsAdmin: auth.IsAdmin(skater, s.adminEmail),
	}, nil
}
