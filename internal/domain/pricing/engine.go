package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/domain/catalog"
	"github.com/sppg-platform/billing/internal/domain/promotion"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// Engine computes payment breakdowns from a package and signup
// context. It is a pure function of its inputs and the injected rule
// tables; there is no shared state across calls.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given rule tables
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// OrganizationDiscount returns the flat discount for the organization
// type. Unknown types degrade to zero rather than failing.
func (e *Engine) OrganizationDiscount(basePrice decimal.Decimal, orgType types.OrganizationType) decimal.Decimal {
	rate, ok := e.cfg.OrganizationRates[orgType]
	if !ok {
		return decimal.Zero
	}
	return basePrice.Mul(rate).Floor()
}

// VolumeDiscount returns the discount of the single tier whose
// recipient range contains targetRecipients
func (e *Engine) VolumeDiscount(basePrice decimal.Decimal, targetRecipients int) decimal.Decimal {
	for _, tier := range e.cfg.VolumeTiers {
		if targetRecipients < tier.MinRecipients {
			continue
		}
		if tier.MaxRecipients != nil && targetRecipients > *tier.MaxRecipients {
			continue
		}
		return basePrice.Mul(tier.Rate).Floor()
	}
	return decimal.Zero
}

// YearlyDiscount is the saving granted for yearly billing. Packages
// with an explicit yearly price state their own annual saving;
// otherwise the default rate applies to the base price.
func (e *Engine) YearlyDiscount(basePrice decimal.Decimal, pkg *catalog.Package) decimal.Decimal {
	if pkg == nil {
		return decimal.Zero
	}
	if pkg.YearlyPrice != nil {
		saving := pkg.AnnualListPrice().Sub(*pkg.YearlyPrice)
		if saving.IsNegative() {
			return decimal.Zero
		}
		return saving.Floor()
	}
	return basePrice.Mul(e.cfg.DefaultYearlyRate).Floor()
}

// PromotionDiscount evaluates the code and returns its discount, or
// zero when the code is absent or ineligible
func (e *Engine) PromotionDiscount(basePrice decimal.Decimal, promo *promotion.PromotionCode, orgType types.OrganizationType, now time.Time) decimal.Decimal {
	if promo == nil {
		return decimal.Zero
	}
	eval := promo.Evaluate(basePrice, orgType, now)
	if !eval.Eligible {
		return decimal.Zero
	}
	return eval.Amount
}

// UpgradeCredit prorates the previous package's cycle price over the
// days remaining in its cycle. With a known cycle anchor the remaining
// days are derived from it; without one a fixed window applies.
func (e *Engine) UpgradeCredit(previous *catalog.Package, cycle types.BillingCycle, now time.Time, anchor *time.Time) decimal.Decimal {
	if previous == nil {
		return decimal.Zero
	}

	totalDays := cycle.Days()
	remainingDays := e.cfg.FallbackProrationDays
	if anchor != nil {
		cycleEnd := cycle.Next(*anchor, 1)
		remainingDays = int(cycleEnd.Sub(now).Hours() / 24)
		if remainingDays < 0 {
			remainingDays = 0
		}
		if remainingDays > totalDays {
			remainingDays = totalDays
		}
	}

	return previous.CyclePrice(cycle).
		Mul(decimal.NewFromInt(int64(remainingDays))).
		Div(decimal.NewFromInt(int64(totalDays))).
		Floor()
}

// Tax is the flat VAT applied to the taxable amount
func (e *Engine) Tax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(e.cfg.TaxRate).Floor()
}

// Calculate produces a fully itemized breakdown. Each discount is
// computed against the original base price independently and the
// results are summed; discounts never compound on one another. The
// only error path is a missing package; absent optional inputs
// degrade to zero-effect defaults.
func (e *Engine) Calculate(input CalculationInput) (*Breakdown, error) {
	if input.Package == nil {
		return nil, ierr.NewError("package is required").
			WithHint("A subscription package must be selected").
			Mark(ierr.ErrValidation)
	}

	cycle := input.BillingCycle
	if cycle.Validate() != nil {
		cycle = types.BillingCycleMonthly
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	pkg := input.Package
	basePrice := pkg.MonthlyPrice
	if cycle == types.BillingCycleYearly {
		basePrice = pkg.AnnualListPrice()
	}

	targetRecipients := 0
	if input.Registration != nil {
		targetRecipients = input.Registration.TargetRecipients
	}

	orgDiscount := e.OrganizationDiscount(basePrice, input.OrganizationType)
	volumeDiscount := e.VolumeDiscount(basePrice, targetRecipients)

	yearlyDiscount := decimal.Zero
	if cycle == types.BillingCycleYearly {
		yearlyDiscount = e.YearlyDiscount(basePrice, pkg)
	}

	promoDiscount := e.PromotionDiscount(basePrice, input.Promotion, input.OrganizationType, now)

	upgradeCredit := decimal.Zero
	if input.IsUpgrade {
		upgradeCredit = e.UpgradeCredit(input.PreviousPackage, cycle, now, input.CycleAnchor)
	}

	totalDiscounts := orgDiscount.
		Add(volumeDiscount).
		Add(yearlyDiscount).
		Add(promoDiscount).
		Add(upgradeCredit)

	subtotal := basePrice.Sub(totalDiscounts)
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	setupFee := pkg.SetupFee
	if input.IsUpgrade {
		setupFee = decimal.Zero
	}

	taxAmount := e.Tax(subtotal.Add(setupFee))
	totalAmount := subtotal.Add(setupFee).Add(taxAmount)

	recurringPayment := decimal.Zero
	if cycle == types.BillingCycleMonthly {
		recurringPayment = subtotal.Add(taxAmount)
	}

	breakdown := &Breakdown{
		BasePrice:            basePrice,
		SetupFee:             setupFee,
		OrganizationDiscount: orgDiscount,
		VolumeDiscount:       volumeDiscount,
		YearlyDiscount:       yearlyDiscount,
		PromotionDiscount:    promoDiscount,
		UpgradeCredit:        upgradeCredit,
		Subtotal:             subtotal,
		TaxAmount:            taxAmount,
		TotalAmount:          totalAmount,
		InitialPayment:       totalAmount,
		RecurringPayment:     recurringPayment,
		BillingCycle:         cycle,
		NextBillingDate:      cycle.Next(now, 1),
	}

	breakdown.PriceBreakdown = e.buildPriceItems(breakdown, pkg)
	breakdown.DiscountBreakdown = e.buildDiscountItems(breakdown, input, targetRecipients)

	if cycle == types.BillingCycleMonthly {
		if savings := e.yearlySavings(pkg, input.OrganizationType); savings.IsPositive() {
			breakdown.SavingsFromYearly = &savings
		}
	}

	return breakdown, nil
}

// yearlySavings is the what-if comparison behind the upsell message on
// monthly quotes: a year of monthly billing versus one yearly cycle,
// organization discount included on both sides
func (e *Engine) yearlySavings(pkg *catalog.Package, orgType types.OrganizationType) decimal.Decimal {
	monthlyBase := pkg.MonthlyPrice
	annualAtMonthly := monthlyBase.Sub(e.OrganizationDiscount(monthlyBase, orgType)).
		Mul(decimal.NewFromInt(12))

	yearlyBase := pkg.AnnualListPrice()
	annualAtYearly := yearlyBase.
		Sub(e.YearlyDiscount(yearlyBase, pkg)).
		Sub(e.OrganizationDiscount(yearlyBase, orgType))

	savings := annualAtMonthly.Sub(annualAtYearly).Floor()
	if savings.IsNegative() {
		return decimal.Zero
	}
	return savings
}

func (e *Engine) buildPriceItems(b *Breakdown, pkg *catalog.Package) []LineItem {
	cycleLabel := "monthly"
	if b.BillingCycle == types.BillingCycleYearly {
		cycleLabel = "yearly"
	}

	items := []LineItem{
		{
			Description: fmt.Sprintf("%s package (%s)", pkg.Name, cycleLabel),
			Amount:      b.BasePrice,
		},
	}

	if b.SetupFee.IsPositive() {
		items = append(items, LineItem{Description: "Setup fee", Amount: b.SetupFee})
	}

	taxPercent := e.cfg.TaxRate.Mul(decimal.NewFromInt(100))
	items = append(items, LineItem{
		Description: fmt.Sprintf("VAT (%s%%)", taxPercent.String()),
		Amount:      b.TaxAmount,
	})

	return items
}

func (e *Engine) buildDiscountItems(b *Breakdown, input CalculationInput, targetRecipients int) []LineItem {
	var items []LineItem

	if b.OrganizationDiscount.IsPositive() {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Organization discount (%s)", input.OrganizationType),
			Amount:      b.OrganizationDiscount,
		})
	}

	if b.VolumeDiscount.IsPositive() {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Volume discount (%d recipients)", targetRecipients),
			Amount:      b.VolumeDiscount,
		})
	}

	if b.YearlyDiscount.IsPositive() {
		items = append(items, LineItem{
			Description: "Yearly billing discount",
			Amount:      b.YearlyDiscount,
		})
	}

	if b.PromotionDiscount.IsPositive() && input.Promotion != nil {
		items = append(items, LineItem{
			Description: fmt.Sprintf("Promo %s", input.Promotion.Code),
			Amount:      b.PromotionDiscount,
		})
	}

	if b.UpgradeCredit.IsPositive() {
		items = append(items, LineItem{
			Description: "Credit for remaining subscription period",
			Amount:      b.UpgradeCredit,
		})
	}

	return items
}
