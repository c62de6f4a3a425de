package repositories

import (
	"context"
	"errors"
	"fmt"

	"skaters_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSkaterNotFound     = errors.New("skater not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// SkaterRepository persists skater records. Lookups return (nil, nil) when
// nothing matches; only store failures are errors.
type SkaterRepository interface {
	Create(ctx context.Context, skater *models.Skater) error
	FindByEmail(ctx context.Context, email string) (*models.Skater, error)
	FindByID(ctx context.Context, id uint) (*models.Skater, error)
	// UpdateFields changes name, years, specialty and approval only.
	UpdateFields(ctx context.Context, id uint, update models.SkaterUpdate) error
	// ListAll returns every skater, approved ones first when approvedFirst is set.
	ListAll(ctx context.Context, approvedFirst bool) ([]models.Skater, error)
}

type GormSkaterRepository struct {
	db *gorm.DB
}

func NewSkaterRepository(db *gorm.DB) *GormSkaterRepository {
	return &GormSkaterRepository{db: db}
}

func (r *GormSkaterRepository) Create(ctx context.Context, skater *models.Skater) error {
	existing, err := r.FindByEmail(ctx, skater.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyExists
	}

	// Unique index covers the race between the check and the insert.
	if err := r.db.WithContext(ctx).Create(skater).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("create skater: %w", err)
	}
	return nil
}

func (r *GormSkaterRepository) FindByEmail(ctx context.Context, email string) (*models.Skater, error) {
	var skater models.Skater
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&skater).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find skater by email: %w", err)
	}
	return &skater, nil
}

func (r *GormSkaterRepository) FindByID(ctx context.Context, id uint) (*models.Skater, error) {
	var skater models.Skater
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&skater).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find skater by id: %w", err)
	}
	return &skater, nil
}

func (r *GormSkaterRepository) UpdateFields(ctx context.Context, id uint, update models.SkaterUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Skater{}).
		Where("id = ?", id).
		Updates(update.Columns())
	if result.Error != nil {
		return fmt.Errorf("update skater %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSkaterNotFound
	}
	return nil
}

func (r *GormSkaterRepository) ListAll(ctx context.Context, approvedFirst bool) ([]models.Skater, error) {
	query := r.db.WithContext(ctx)
	if approvedFirst {
		query = query.Order("approved DESC")
	}

	var skaters []models.Skater
	if err := query.Order("id ASC").Find(&skaters).Error; err != nil {
		return nil, fmt.Errorf("list skaters: %w", err)
	}
	return skaters, nil
}
