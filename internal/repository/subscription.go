package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/sppg-platform/billing/internal/domain/subscription"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// InMemorySubscriptionRepository stores subscriptions for the admin
// surface. Listing is deterministic: newest first by creation time.
type InMemorySubscriptionRepository struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription.Subscription
}

func NewInMemorySubscriptionRepository() *InMemorySubscriptionRepository {
	return &InMemorySubscriptionRepository{
		subscriptions: make(map[string]*subscription.Subscription),
	}
}

func (r *InMemorySubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil || sub.ID == "" {
		return ierr.NewError("subscription id cannot be empty").
			WithHint("Invalid subscription").
			Mark(ierr.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subscriptions[sub.ID]; exists {
		return ierr.NewError("subscription already exists").
			WithHintf("Subscription %s already exists", sub.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	r.subscriptions[sub.ID] = sub
	return nil
}

func (r *InMemorySubscriptionRepository) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, exists := r.subscriptions[id]
	if !exists {
		return nil, ierr.NewError("subscription not found").
			WithHintf("Subscription %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	return sub, nil
}

func (r *InMemorySubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil || sub.ID == "" {
		return ierr.NewError("subscription id cannot be empty").
			WithHint("Invalid subscription").
			Mark(ierr.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subscriptions[sub.ID]; !exists {
		return ierr.NewError("subscription not found").
			WithHintf("Subscription %s was not found", sub.ID).
			Mark(ierr.ErrNotFound)
	}

	r.subscriptions[sub.ID] = sub
	return nil
}

func (r *InMemorySubscriptionRepository) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	matched := r.matching(filter)

	offset := filter.GetOffset()
	if offset >= len(matched) {
		return []*subscription.Subscription{}, nil
	}

	end := offset + filter.GetLimit()
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], nil
}

func (r *InMemorySubscriptionRepository) Count(ctx context.Context, filter *types.SubscriptionFilter) (int, error) {
	return len(r.matching(filter)), nil
}

func (r *InMemorySubscriptionRepository) matching(filter *types.SubscriptionFilter) []*subscription.Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*subscription.Subscription
	for _, sub := range r.subscriptions {
		if sub.Matches(filter) {
			matched = append(matched, sub)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched
}
