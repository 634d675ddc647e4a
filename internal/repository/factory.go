package repository

import (
	"github.com/sppg-platform/billing/internal/cache"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	"github.com/sppg-platform/billing/internal/domain/signup"
	"github.com/sppg-platform/billing/internal/domain/subscription"
)

// Constructors returning the domain repository interfaces, used for
// dependency injection wiring

func NewCatalogRepository(c cache.Cache) catalog.Repository {
	return NewInMemoryCatalogRepository(c)
}

func NewPromotionRepository() promotion.Repository {
	return NewInMemoryPromotionRepository()
}

func NewSubscriptionRepository() subscription.Repository {
	return NewInMemorySubscriptionRepository()
}

func NewSignupRepository() signup.Repository {
	return NewInMemorySignupRepository()
}
