package repository

import (
	"context"
	"sync"

	"github.com/sppg-platform/billing/internal/domain/signup"
	ierr "github.com/sppg-platform/billing/internal/errors"
)

// InMemorySignupRepository stores signup wizard drafts
type InMemorySignupRepository struct {
	mu     sync.RWMutex
	drafts map[string]*signup.Draft
}

func NewInMemorySignupRepository() *InMemorySignupRepository {
	return &InMemorySignupRepository{
		drafts: make(map[string]*signup.Draft),
	}
}

func (r *InMemorySignupRepository) Create(ctx context.Context, draft *signup.Draft) error {
	if draft == nil || draft.ID == "" {
		return ierr.NewError("signup draft id cannot be empty").
			WithHint("Invalid signup draft").
			Mark(ierr.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[draft.ID]; exists {
		return ierr.NewError("signup draft already exists").
			WithHintf("Signup draft %s already exists", draft.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	r.drafts[draft.ID] = draft
	return nil
}

func (r *InMemorySignupRepository) Get(ctx context.Context, id string) (*signup.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, exists := r.drafts[id]
	if !exists {
		return nil, ierr.NewError("signup draft not found").
			WithHintf("Signup draft %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	return draft, nil
}

func (r *InMemorySignupRepository) Update(ctx context.Context, draft *signup.Draft) error {
	if draft == nil || draft.ID == "" {
		return ierr.NewError("signup draft id cannot be empty").
			WithHint("Invalid signup draft").
			Mark(ierr.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[draft.ID]; !exists {
		return ierr.NewError("signup draft not found").
			WithHintf("Signup draft %s was not found", draft.ID).
			Mark(ierr.ErrNotFound)
	}

	r.drafts[draft.ID] = draft
	return nil
}
