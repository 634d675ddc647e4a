package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/types"
)

// Package is a subscription package offered to SPPG operators. Prices
// are integer rupiah amounts; the engine only ever reads a package,
// never mutates it.
type Package struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Tier        types.PackageTier `json:"tier"`

	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	// YearlyPrice overrides the standard yearly discount when set.
	// Absent, the effective yearly price is MonthlyPrice x 12.
	YearlyPrice *decimal.Decimal `json:"yearly_price,omitempty"`
	SetupFee    decimal.Decimal  `json:"setup_fee"`

	// MaxRecipients is the recipient capacity the tier is sized for
	MaxRecipients int             `json:"max_recipients"`
	Features      PackageFeatures `json:"features"`

	Status    types.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PackageFeatures are the capability flags of a package tier
type PackageFeatures struct {
	AdvancedReporting bool `json:"advanced_reporting"`
	APIAccess         bool `json:"api_access"`
	NutritionAnalysis bool `json:"nutrition_analysis"`
	QualityControl    bool `json:"quality_control"`
	MultiLocation     bool `json:"multi_location"`
	PrioritySupport   bool `json:"priority_support"`
}

// AnnualListPrice is the undiscounted cost of twelve monthly cycles
func (p *Package) AnnualListPrice() decimal.Decimal {
	return p.MonthlyPrice.Mul(decimal.NewFromInt(12))
}

// EffectiveYearlyPrice is the price actually charged for a yearly
// cycle: the explicit yearly price when the package defines one,
// otherwise twelve months at list
func (p *Package) EffectiveYearlyPrice() decimal.Decimal {
	if p.YearlyPrice != nil {
		return *p.YearlyPrice
	}
	return p.AnnualListPrice()
}

// CyclePrice is the amount a subscriber actually pays per cycle,
// used when crediting back the remainder of a previous subscription
func (p *Package) CyclePrice(cycle types.BillingCycle) decimal.Decimal {
	if cycle == types.BillingCycleYearly {
		return p.EffectiveYearlyPrice()
	}
	return p.MonthlyPrice
}
