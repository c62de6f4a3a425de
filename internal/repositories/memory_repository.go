package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"skaters_backend/internal/models"
)

// MemorySkaterRepository keeps skaters in process memory. It backs the
// "memory" database driver used for local runs and tests.
type MemorySkaterRepository struct {
	mu      sync.RWMutex
	nextID  uint
	skaters map[uint]models.Skater
	now     func() time.Time
}

func NewMemorySkaterRepository() *MemorySkaterRepository {
	return &MemorySkaterRepository{
		nextID:  1,
		skaters: make(map[uint]models.Skater),
		now:     time.Now,
	}
}

func (r *MemorySkaterRepository) Create(_ context.Context, skater *models.Skater) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.skaters {
		if strings.EqualFold(s.Email, skater.Email) {
			return ErrEmailAlreadyExists
		}
	}

	now := r.now()
	skater.ID = r.nextID
	skater.CreatedAt = now
	skater.UpdatedAt = now
	r.nextID++
	r.skaters[skater.ID] = *skater
	return nil
}

func (r *MemorySkaterRepository) FindByEmail(_ context.Context, email string) (*models.Skater, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.skaters {
		if strings.EqualFold(s.Email, email) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemorySkaterRepository) FindByID(_ context.Context, id uint) (*models.Skater, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.skaters[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *MemorySkaterRepository) UpdateFields(_ context.Context, id uint, update models.SkaterUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.skaters[id]
	if !ok {
		return ErrSkaterNotFound
	}
	if update.IsEmpty() {
		return nil
	}

	update.Apply(&s)
	s.UpdatedAt = r.now()
	r.skaters[id] = s
	return nil
}

func (r *MemorySkaterRepository) ListAll(_ context.Context, approvedFirst bool) ([]models.Skater, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skaters := make([]models.Skater, 0, len(r.skaters))
	for _, s := range r.skaters {
		skaters = append(skaters, s)
	}

	sort.Slice(skaters, func(i, j int) bool {
		if approvedFirst && skaters[i].Approved != skaters[j].Approved {
			return skaters[i].Approved
		}
		return skaters[i].ID < skaters[j].ID
	})
	return skaters, nil
}
