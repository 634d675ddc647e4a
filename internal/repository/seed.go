package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	"github.com/sppg-platform/billing/internal/types"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// SeedPackages loads the production package tiers into the catalog.
// Prices are integer rupiah.
func SeedPackages(ctx context.Context, repo catalog.Repository) error {
	now := time.Now().UTC()

	packages := []*catalog.Package{
		{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PACKAGE),
			Name:          "Basic",
			Description:   "Entry tier for small community kitchens",
			Tier:          types.PackageTierBasic,
			MonthlyPrice:  decimal.NewFromInt(2_500_000),
			SetupFee:      decimal.NewFromInt(1_000_000),
			MaxRecipients: 1_000,
			Features:      catalog.PackageFeatures{},
			Status:        types.StatusPublished,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PACKAGE),
			Name:          "Standard",
			Description:   "Mid tier with reporting and quality control",
			Tier:          types.PackageTierStandard,
			MonthlyPrice:  decimal.NewFromInt(5_000_000),
			YearlyPrice:   decimalPtr(decimal.NewFromInt(51_000_000)),
			SetupFee:      decimal.NewFromInt(2_000_000),
			MaxRecipients: 3_000,
			Features: catalog.PackageFeatures{
				AdvancedReporting: true,
				QualityControl:    true,
			},
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PACKAGE),
			Name:          "Pro",
			Description:   "Full operational suite for large operators",
			Tier:          types.PackageTierPro,
			MonthlyPrice:  decimal.NewFromInt(10_000_000),
			YearlyPrice:   decimalPtr(decimal.NewFromInt(100_000_000)),
			SetupFee:      decimal.NewFromInt(3_500_000),
			MaxRecipients: 7_500,
			Features: catalog.PackageFeatures{
				AdvancedReporting: true,
				APIAccess:         true,
				NutritionAnalysis: true,
				QualityControl:    true,
			},
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PACKAGE),
			Name:          "Enterprise",
			Description:   "Multi-location deployments with priority support",
			Tier:          types.PackageTierEnterprise,
			MonthlyPrice:  decimal.NewFromInt(25_000_000),
			SetupFee:      decimal.NewFromInt(10_000_000),
			MaxRecipients: 25_000,
			Features: catalog.PackageFeatures{
				AdvancedReporting: true,
				APIAccess:         true,
				NutritionAnalysis: true,
				QualityControl:    true,
				MultiLocation:     true,
				PrioritySupport:   true,
			},
			Status:    types.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for _, pkg := range packages {
		if err := repo.Create(ctx, pkg); err != nil {
			return err
		}
	}

	return nil
}

// SeedPromotions loads the active promotion codes
func SeedPromotions(ctx context.Context, repo promotion.Repository) error {
	codes := []*promotion.PromotionCode{
		{
			Code:        "LAUNCH2024",
			Description: "Launch discount 25%, capped at Rp 500.000",
			Type:        types.PromotionTypePercentage,
			Value:       decimal.NewFromInt(25),
			ValidUntil:  time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			MaxDiscount: decimalPtr(decimal.NewFromInt(500_000)),
			Status:      types.StatusPublished,
		},
		{
			Code:        "SPPGBARU",
			Description: "Rp 250.000 off for new community and foundation operators",
			Type:        types.PromotionTypeFixedAmount,
			Value:       decimal.NewFromInt(250_000),
			ValidUntil:  time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC),
			MinAmount:   decimalPtr(decimal.NewFromInt(2_000_000)),
			OrganizationTypes: []types.OrganizationType{
				types.OrganizationTypeKomunitas,
				types.OrganizationTypeYayasan,
			},
			Status: types.StatusPublished,
		},
		{
			Code:        "HEMAT10",
			Description: "10% off orders above Rp 5.000.000",
			Type:        types.PromotionTypePercentage,
			Value:       decimal.NewFromInt(10),
			ValidUntil:  time.Date(2027, 12, 31, 23, 59, 59, 0, time.UTC),
			MinAmount:   decimalPtr(decimal.NewFromInt(5_000_000)),
			MaxDiscount: decimalPtr(decimal.NewFromInt(2_000_000)),
			Status:      types.StatusPublished,
		},
	}

	for _, code := range codes {
		if err := repo.Create(ctx, code); err != nil {
			return err
		}
	}

	return nil
}
