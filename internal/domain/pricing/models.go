package pricing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	"github.com/sppg-platform/billing/internal/domain/registration"
	"github.com/sppg-platform/billing/internal/types"
)

// CalculationInput is everything a single quote depends on. The
// caller resolves the package and promotion code beforehand; an
// unknown code simply arrives as a nil Promotion and contributes no
// discount.
type CalculationInput struct {
	Package          *catalog.Package
	Registration     *registration.Data
	BillingCycle     types.BillingCycle
	Promotion        *promotion.PromotionCode
	OrganizationType types.OrganizationType

	IsUpgrade       bool
	PreviousPackage *catalog.Package
	// CycleAnchor is the start of the previous subscription's current
	// cycle; when nil the upgrade credit falls back to a fixed window
	CycleAnchor *time.Time

	// Now is the injected clock; date math never reads the wall clock
	Now time.Time
}

// LineItem is a human-readable row of a breakdown for UI display
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Breakdown is the fully itemized result of a quote. It is never
// mutated once produced; every recalculation yields a fresh value.
type Breakdown struct {
	BasePrice decimal.Decimal `json:"base_price"`
	SetupFee  decimal.Decimal `json:"setup_fee"`

	OrganizationDiscount decimal.Decimal `json:"organization_discount"`
	VolumeDiscount       decimal.Decimal `json:"volume_discount"`
	YearlyDiscount       decimal.Decimal `json:"yearly_discount"`
	PromotionDiscount    decimal.Decimal `json:"promotion_discount"`
	UpgradeCredit        decimal.Decimal `json:"upgrade_credit"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	// TotalAmount = Subtotal + SetupFee + TaxAmount
	TotalAmount decimal.Decimal `json:"total_amount"`

	InitialPayment   decimal.Decimal `json:"initial_payment"`
	RecurringPayment decimal.Decimal `json:"recurring_payment"`

	PriceBreakdown    []LineItem `json:"price_breakdown"`
	DiscountBreakdown []LineItem `json:"discount_breakdown"`

	BillingCycle    types.BillingCycle `json:"billing_cycle"`
	NextBillingDate time.Time          `json:"next_billing_date"`
	// SavingsFromYearly is the projected annual saving of switching
	// to yearly billing; only set on monthly quotes
	SavingsFromYearly *decimal.Decimal `json:"savings_from_yearly,omitempty"`
}

// ScheduleItem is one projected payment event
type ScheduleItem struct {
	DueDate     time.Time                     `json:"due_date"`
	Description string                        `json:"description"`
	Amount      decimal.Decimal               `json:"amount"`
	Type        types.PaymentScheduleItemType `json:"type"`
	Status      types.PaymentStatus           `json:"status"`
}

// Schedule projects future billing events from a breakdown. It only
// projects; actual payment state transitions live elsewhere.
type Schedule struct {
	BillingCycle         types.BillingCycle `json:"billing_cycle"`
	Payments             []ScheduleItem     `json:"payments"`
	TotalProjectedAmount decimal.Decimal    `json:"total_projected_amount"`
	TotalSavings         decimal.Decimal    `json:"total_savings"`
}
