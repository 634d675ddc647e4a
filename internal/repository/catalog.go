package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/sppg-platform/billing/internal/cache"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

const catalogCacheKeyPrefix = "catalog:pkg:"

// InMemoryCatalogRepository is the package catalog store. The catalog
// is external read-mostly data in this system, so reads go through
// the shared cache layer.
type InMemoryCatalogRepository struct {
	mu       sync.RWMutex
	packages map[string]*catalog.Package
	cache    cache.Cache
}

func NewInMemoryCatalogRepository(c cache.Cache) *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		packages: make(map[string]*catalog.Package),
		cache:    c,
	}
}

func (r *InMemoryCatalogRepository) Create(ctx context.Context, pkg *catalog.Package) error {
	if pkg == nil {
		return ierr.NewError("package cannot be nil").
			WithHint("Invalid package").
			Mark(ierr.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packages[pkg.ID]; exists {
		return ierr.NewError("package already exists").
			WithHintf("A package with id %s already exists", pkg.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	r.packages[pkg.ID] = pkg
	r.cache.Delete(ctx, catalogCacheKeyPrefix+pkg.ID)
	return nil
}

func (r *InMemoryCatalogRepository) Get(ctx context.Context, id string) (*catalog.Package, error) {
	if cached, ok := r.cache.Get(ctx, catalogCacheKeyPrefix+id); ok {
		if pkg, ok := cached.(*catalog.Package); ok {
			return pkg, nil
		}
	}

	r.mu.RLock()
	pkg, exists := r.packages[id]
	r.mu.RUnlock()

	if !exists {
		return nil, ierr.NewError("package not found").
			WithHintf("Package %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Set(ctx, catalogCacheKeyPrefix+id, pkg, cache.DefaultExpiration)
	return pkg, nil
}

func (r *InMemoryCatalogRepository) GetByTier(ctx context.Context, tier string) (*catalog.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pkg := range r.packages {
		if strings.EqualFold(string(pkg.Tier), tier) && pkg.Status == types.StatusPublished {
			return pkg, nil
		}
	}

	return nil, ierr.NewError("package not found").
		WithHintf("No published package for tier %s", tier).
		Mark(ierr.ErrNotFound)
}

func (r *InMemoryCatalogRepository) List(ctx context.Context) ([]*catalog.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.Package, 0, len(r.packages))
	for _, pkg := range r.packages {
		if pkg.Status == types.StatusPublished {
			result = append(result, pkg)
		}
	}

	return result, nil
}
