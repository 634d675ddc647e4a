package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/sppg-platform/billing/internal/domain/promotion"
	ierr "github.com/sppg-platform/billing/internal/errors"
)

// InMemoryPromotionRepository stores promotion codes keyed by their
// upper-cased code
type InMemoryPromotionRepository struct {
	mu    sync.RWMutex
	codes map[string]*promotion.PromotionCode
}

func NewInMemoryPromotionRepository() *InMemoryPromotionRepository {
	return &InMemoryPromotionRepository{
		codes: make(map[string]*promotion.PromotionCode),
	}
}

func (r *InMemoryPromotionRepository) Create(ctx context.Context, code *promotion.PromotionCode) error {
	if code == nil || code.Code == "" {
		return ierr.NewError("promotion code cannot be empty").
			WithHint("Invalid promotion code").
			Mark(ierr.ErrValidation)
	}

	key := strings.ToUpper(code.Code)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codes[key]; exists {
		return ierr.NewError("promotion code already exists").
			WithHintf("Promotion code %s already exists", key).
			Mark(ierr.ErrAlreadyExists)
	}

	code.Code = key
	r.codes[key] = code
	return nil
}

func (r *InMemoryPromotionRepository) Get(ctx context.Context, code string) (*promotion.PromotionCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	promo, exists := r.codes[strings.ToUpper(code)]
	if !exists {
		return nil, ierr.NewError("promotion code not found").
			WithHint("Promotion code not found").
			Mark(ierr.ErrNotFound)
	}

	return promo, nil
}

func (r *InMemoryPromotionRepository) List(ctx context.Context) ([]*promotion.PromotionCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*promotion.PromotionCode, 0, len(r.codes))
	for _, promo := range r.codes {
		result = append(result, promo)
	}

	return result, nil
}
