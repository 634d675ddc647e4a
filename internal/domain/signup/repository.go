package signup

import "context"

// Repository stores signup drafts
type Repository interface {
	Create(ctx context.Context, draft *Draft) error
	Get(ctx context.Context, id string) (*Draft, error)
	Update(ctx context.Context, draft *Draft) error
}
