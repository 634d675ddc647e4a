package promotion

import "context"

// Repository provides access to promotion codes. Lookups are
// case-insensitive; implementations normalize codes to upper case.
type Repository interface {
	Get(ctx context.Context, code string) (*PromotionCode, error)
	List(ctx context.Context) ([]*PromotionCode, error)
	Create(ctx context.Context, code *PromotionCode) error
}
