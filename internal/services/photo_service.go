package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"

	"skaters_backend/internal/imageprocessor"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/storage"
	"skaters_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
)

// PhotoService checks and stores registration photos.
type PhotoService interface {
	// Store validates the upload and returns the public path of the stored photo.
	// The file keeps the base name it was uploaded with, so a later upload with
	// the same name replaces the earlier file, even one owned by another skater.
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// PhotoConfig limits what is accepted as a photo.
type PhotoConfig struct {
	MaxSize      int64
	AllowedTypes []string
	MaxDimension int
}

type photoService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    PhotoConfig
}

func NewPhotoService(store storage.Storage, processor *imageprocessor.Processor, cfg PhotoConfig) PhotoService {
	return &photoService{
		storage:   store,
		processor: processor,
		config:    cfg,
	}
}

func (s *photoService) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrPhotoRequired
	}
	if s.config.MaxSize > 0 && file.Size > s.config.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	key := storage.CleanKey(file.Filename)
	if key == "" {
		return "", apperrors.NewBadRequestError("Invalid photo file name")
	}

	data, err := s.read(file)
	if err != nil {
		return "", err
	}

	// Trust the bytes, not the client supplied Content-Type.
	mtype := mimetype.Detect(data)
	if !s.allowed(mtype) {
		logger.CtxWarn(ctx, "rejected photo upload", "file", key, "mime", mtype.String())
		return "", apperrors.ErrInvalidFileType
	}
	// Files are served by extension, so it has to agree with the content.
	if !extensionMatches(key, mtype) {
		logger.CtxWarn(ctx, "photo extension does not match content", "file", key, "mime", mtype.String())
		return "", apperrors.ErrInvalidFileType
	}

	data, resized, err := s.processor.Fit(data, s.config.MaxDimension)
	if err != nil {
		switch {
		case errors.Is(err, imageprocessor.ErrNotAnImage):
			return "", apperrors.ErrInvalidFileType
		case errors.Is(err, imageprocessor.ErrTooManyPixels):
			logger.CtxWarn(ctx, "rejected oversized photo", "file", key, "reason", err.Error())
			return "", apperrors.ErrFileTooLarge
		}
		return "", apperrors.InternalError(err)
	}

	if err := s.storage.Save(ctx, key, bytes.NewReader(data), mtype.String()); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "photo stored", "file", key, "bytes", len(data), "resized", resized)
	return url, nil
}

func (s *photoService) read(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("open uploaded photo: %w", err))
	}
	defer src.Close()

	var r io.Reader = src
	if s.config.MaxSize > 0 {
		r = io.LimitReader(src, s.config.MaxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("read uploaded photo: %w", err))
	}
	if s.config.MaxSize > 0 && int64(len(data)) > s.config.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, apperrors.ErrPhotoRequired
	}
	return data, nil
}

func (s *photoService) allowed(mtype *mimetype.MIME) bool {
	if len(s.config.AllowedTypes) == 0 {
		return true
	}
	for _, t := range s.config.AllowedTypes {
		if mtype.Is(t) {
			return true
		}
	}
	return false
}

func extensionMatches(key string, mtype *mimetype.MIME) bool {
	ext := filepath.Ext(key)
	if ext == "" {
		return false
	}
	byExt := mime.TypeByExtension(ext)
	return byExt != "" && mtype.Is(byExt)
}
