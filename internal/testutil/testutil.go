package testutil

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/cache"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	"github.com/sppg-platform/billing/internal/domain/registration"
	"github.com/sppg-platform/billing/internal/domain/signup"
	"github.com/sppg-platform/billing/internal/domain/subscription"
	"github.com/sppg-platform/billing/internal/logger"
	"github.com/sppg-platform/billing/internal/repository"
	"github.com/sppg-platform/billing/internal/types"
)

// Logger returns a logger suitable for tests
func Logger() *logger.Logger {
	return logger.GetLogger()
}

// Stores bundles fresh in-memory repositories for a single test
type Stores struct {
	Catalog      catalog.Repository
	Promotion    promotion.Repository
	Subscription subscription.Repository
	Signup       signup.Repository
}

func NewStores() *Stores {
	return &Stores{
		Catalog:      repository.NewCatalogRepository(cache.NewInMemoryCache()),
		Promotion:    repository.NewPromotionRepository(),
		Subscription: repository.NewSubscriptionRepository(),
		Signup:       repository.NewSignupRepository(),
	}
}

// SeedDefaults loads the fixture packages and promotion codes
func (s *Stores) SeedDefaults(ctx context.Context) error {
	for _, pkg := range []*catalog.Package{BasicPackage(), StandardPackage()} {
		if err := s.Catalog.Create(ctx, pkg); err != nil {
			return err
		}
	}

	for _, promo := range []*promotion.PromotionCode{LaunchPromo(), NewOperatorPromo(), ExpiredPromo()} {
		if err := s.Promotion.Create(ctx, promo); err != nil {
			return err
		}
	}

	return nil
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// BasicPackage is the entry-tier fixture with no explicit yearly price
func BasicPackage() *catalog.Package {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &catalog.Package{
		ID:            "pkg_basic_test",
		Name:          "Basic",
		Tier:          types.PackageTierBasic,
		MonthlyPrice:  decimal.NewFromInt(2_500_000),
		SetupFee:      decimal.NewFromInt(1_000_000),
		MaxRecipients: 1_000,
		Status:        types.StatusPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// StandardPackage is the mid-tier fixture with an explicit yearly price
func StandardPackage() *catalog.Package {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &catalog.Package{
		ID:            "pkg_standard_test",
		Name:          "Standard",
		Tier:          types.PackageTierStandard,
		MonthlyPrice:  decimal.NewFromInt(5_000_000),
		YearlyPrice:   decimalPtr(decimal.NewFromInt(51_000_000)),
		SetupFee:      decimal.NewFromInt(2_000_000),
		MaxRecipients: 3_000,
		Status:        types.StatusPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// LaunchPromo is a capped percentage code open to every organization type
func LaunchPromo() *promotion.PromotionCode {
	return &promotion.PromotionCode{
		Code:        "LAUNCH25",
		Description: "Launch discount 25%, capped at Rp 500.000",
		Type:        types.PromotionTypePercentage,
		Value:       decimal.NewFromInt(25),
		ValidUntil:  time.Date(2027, 12, 31, 23, 59, 59, 0, time.UTC),
		MaxDiscount: decimalPtr(decimal.NewFromInt(500_000)),
		Status:      types.StatusPublished,
	}
}

// NewOperatorPromo is a fixed-amount code restricted by organization type
func NewOperatorPromo() *promotion.PromotionCode {
	return &promotion.PromotionCode{
		Code:        "OPERATORBARU",
		Description: "Rp 250.000 off for community and foundation operators",
		Type:        types.PromotionTypeFixedAmount,
		Value:       decimal.NewFromInt(250_000),
		ValidUntil:  time.Date(2027, 6, 30, 23, 59, 59, 0, time.UTC),
		MinAmount:   decimalPtr(decimal.NewFromInt(2_000_000)),
		OrganizationTypes: []types.OrganizationType{
			types.OrganizationTypeKomunitas,
			types.OrganizationTypeYayasan,
		},
		Status: types.StatusPublished,
	}
}

// ExpiredPromo is past its validity window
func ExpiredPromo() *promotion.PromotionCode {
	return &promotion.PromotionCode{
		Code:       "KADALUARSA",
		Type:       types.PromotionTypePercentage,
		Value:      decimal.NewFromInt(50),
		ValidUntil: time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		Status:     types.StatusPublished,
	}
}

var documentsByOrgType = map[types.OrganizationType]map[string]string{
	types.OrganizationTypePemerintah: {
		"sk_penetapan": "uploads/sk-penetapan.pdf",
		"npwp":         "uploads/npwp.pdf",
	},
	types.OrganizationTypeSwasta: {
		"nib":            "uploads/nib.pdf",
		"npwp":           "uploads/npwp.pdf",
		"akta_pendirian": "uploads/akta.pdf",
	},
	types.OrganizationTypeYayasan: {
		"akta_yayasan":   "uploads/akta-yayasan.pdf",
		"sk_kemenkumham": "uploads/sk-kemenkumham.pdf",
		"npwp":           "uploads/npwp.pdf",
	},
	types.OrganizationTypeKomunitas: {
		"surat_keterangan": "uploads/surat-keterangan.pdf",
	},
	types.OrganizationTypeLainnya: {
		"surat_keterangan": "uploads/surat-keterangan.pdf",
	},
}

// CompleteRegistration returns registration data that passes every rule
// for the given organization type
func CompleteRegistration(orgType types.OrganizationType, targetRecipients int) *registration.Data {
	docs := make(map[string]string, len(documentsByOrgType[orgType]))
	for code, ref := range documentsByOrgType[orgType] {
		docs[code] = ref
	}

	return &registration.Data{
		OrganizationType: orgType,
		OrganizationName: "SPPG Maju Bersama",
		PICName:          "Siti Rahma",
		Email:            "siti@sppg-maju.id",
		Phone:            "+62811234567",
		Address:          "Jl. Melati No. 5",
		City:             "Bandung",
		Province:         "Jawa Barat",
		TargetRecipients: targetRecipients,
		MaxRadiusKM:      10,
		Documents:        docs,
	}
}
