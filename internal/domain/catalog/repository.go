package catalog

import "context"

// Repository provides access to the package catalog
type Repository interface {
	Create(ctx context.Context, pkg *Package) error
	Get(ctx context.Context, id string) (*Package, error)
	GetByTier(ctx context.Context, tier string) (*Package, error)
	List(ctx context.Context) ([]*Package, error)
}
