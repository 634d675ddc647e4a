package promotion

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/types"
)

// Rejection reasons surfaced to the UI when a code cannot be applied
const (
	ReasonArchived         = "Promotion code is no longer active"
	ReasonNotYetActive     = "Promotion code is not active yet"
	ReasonExpired          = "Promotion code has expired"
	ReasonOrganizationType = "Promotion code is not available for this organization type"
	ReasonBelowMinimum     = "Order amount is below the minimum for this promotion code"
)

// PromotionCode is a discount code entry. Codes are stored upper-cased
// and looked up case-insensitively.
type PromotionCode struct {
	Code        string              `json:"code"`
	Description string              `json:"description"`
	Type        types.PromotionType `json:"type"`
	// Value is a percentage (e.g. 25) for PERCENTAGE codes and an
	// absolute rupiah amount for FIXED_AMOUNT codes
	Value      decimal.Decimal `json:"value"`
	ValidFrom  *time.Time      `json:"valid_from,omitempty"`
	ValidUntil time.Time       `json:"valid_until"`
	// MinAmount gates the code on a minimum base amount when set
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	// MaxDiscount caps PERCENTAGE discounts when set; FIXED_AMOUNT
	// codes are never clamped
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`
	// OrganizationTypes is an allow-list; empty means all types
	OrganizationTypes []types.OrganizationType `json:"organization_types,omitempty"`
	Status            types.Status             `json:"status"`
}

// Evaluation is the single source of truth for promo eligibility,
// shared by quote calculation and the standalone validate endpoint
type Evaluation struct {
	Eligible bool            `json:"eligible"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   string          `json:"reason,omitempty"`
}

// Evaluate checks eligibility against the base amount, organization
// type and clock, and computes the discount amount when eligible.
func (p *PromotionCode) Evaluate(baseAmount decimal.Decimal, orgType types.OrganizationType, now time.Time) Evaluation {
	if p.Status == types.StatusArchived {
		return Evaluation{Eligible: false, Amount: decimal.Zero, Reason: ReasonArchived}
	}

	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return Evaluation{Eligible: false, Amount: decimal.Zero, Reason: ReasonNotYetActive}
	}

	if now.After(p.ValidUntil) {
		return Evaluation{Eligible: false, Amount: decimal.Zero, Reason: ReasonExpired}
	}

	if len(p.OrganizationTypes) > 0 && !lo.Contains(p.OrganizationTypes, orgType) {
		return Evaluation{Eligible: false, Amount: decimal.Zero, Reason: ReasonOrganizationType}
	}

	if p.MinAmount != nil && baseAmount.LessThan(*p.MinAmount) {
		return Evaluation{Eligible: false, Amount: decimal.Zero, Reason: ReasonBelowMinimum}
	}

	return Evaluation{Eligible: true, Amount: p.discountAmount(baseAmount)}
}

func (p *PromotionCode) discountAmount(baseAmount decimal.Decimal) decimal.Decimal {
	switch p.Type {
	case types.PromotionTypePercentage:
		amount := baseAmount.Mul(p.Value).Div(decimal.NewFromInt(100)).Floor()
		if p.MaxDiscount != nil && amount.GreaterThan(*p.MaxDiscount) {
			amount = *p.MaxDiscount
		}
		return amount
	case types.PromotionTypeFixedAmount:
		return p.Value
	default:
		return decimal.Zero
	}
}
