package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/types"
)

// VolumeTier is one recipient-count band of the volume discount
// table. Bands are closed-inclusive at both ends; a nil MaxRecipients
// marks the final unbounded tier.
type VolumeTier struct {
	MinRecipients int             `json:"min_recipients"`
	MaxRecipients *int            `json:"max_recipients,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
}

// Config is the immutable rule set an Engine is constructed with.
// Tests substitute fixture tables here instead of touching globals.
type Config struct {
	// TaxRate is the VAT (PPN) rate applied to subtotal plus setup fee
	TaxRate decimal.Decimal
	// OrganizationRates maps organization type to a flat discount
	// rate; unknown types fall back to zero
	OrganizationRates map[types.OrganizationType]decimal.Decimal
	// VolumeTiers is ordered by MinRecipients ascending
	VolumeTiers []VolumeTier
	// DefaultYearlyRate applies when a package has no explicit yearly
	// price of its own
	DefaultYearlyRate decimal.Decimal
	// FallbackProrationDays is the remaining-days window assumed for
	// upgrade credits when no cycle anchor is known
	FallbackProrationDays int
}

func intPtr(v int) *int { return &v }

// DefaultConfig returns the production rule tables
func DefaultConfig() Config {
	return Config{
		TaxRate: decimal.NewFromFloat(0.11),
		OrganizationRates: map[types.OrganizationType]decimal.Decimal{
			types.OrganizationTypePemerintah: decimal.NewFromFloat(0.15),
			types.OrganizationTypeSwasta:     decimal.Zero,
			types.OrganizationTypeYayasan:    decimal.NewFromFloat(0.10),
			types.OrganizationTypeKomunitas:  decimal.NewFromFloat(0.20),
			types.OrganizationTypeLainnya:    decimal.NewFromFloat(0.05),
		},
		VolumeTiers: []VolumeTier{
			{MinRecipients: 0, MaxRecipients: intPtr(500), Rate: decimal.Zero},
			{MinRecipients: 501, MaxRecipients: intPtr(1000), Rate: decimal.NewFromFloat(0.05)},
			{MinRecipients: 1001, MaxRecipients: intPtr(2500), Rate: decimal.NewFromFloat(0.10)},
			{MinRecipients: 2501, MaxRecipients: intPtr(5000), Rate: decimal.NewFromFloat(0.15)},
			{MinRecipients: 5001, MaxRecipients: nil, Rate: decimal.NewFromFloat(0.20)},
		},
		DefaultYearlyRate:     decimal.NewFromFloat(0.15),
		FallbackProrationDays: 15,
	}
}
