package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sppg-platform/billing/internal/domain/pricing"
	"github.com/sppg-platform/billing/internal/domain/registration"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// CalculatePaymentRequest asks for a fresh quote. The wizard sends
// one every time a pricing-relevant field changes.
type CalculatePaymentRequest struct {
	PackageID        string                 `json:"package_id" validate:"required"`
	BillingCycle     types.BillingCycle     `json:"billing_cycle" validate:"required"`
	OrganizationType types.OrganizationType `json:"organization_type" validate:"required"`
	Registration     *registration.Data     `json:"registration,omitempty"`
	PromotionCode    string                 `json:"promotion_code,omitempty"`

	IsUpgrade         bool       `json:"is_upgrade,omitempty"`
	PreviousPackageID string     `json:"previous_package_id,omitempty"`
	CycleAnchor       *time.Time `json:"cycle_anchor,omitempty"`
}

// Validate validates the CalculatePaymentRequest
func (r *CalculatePaymentRequest) Validate() error {
	if r.PackageID == "" {
		return ierr.NewError("package_id is required").
			WithHint("Please select a package").
			Mark(ierr.ErrValidation)
	}

	if err := r.BillingCycle.Validate(); err != nil {
		return err
	}

	if err := r.OrganizationType.Validate(); err != nil {
		return err
	}

	if r.IsUpgrade && r.PreviousPackageID == "" {
		return ierr.NewError("previous_package_id is required for upgrades").
			WithHint("Please provide the package being upgraded from").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// PaymentBreakdownResponse is the itemized quote returned to the UI
type PaymentBreakdownResponse struct {
	*pricing.Breakdown
}

// PaymentScheduleRequest projects future payments from a fresh quote
type PaymentScheduleRequest struct {
	CalculatePaymentRequest
	StartDate *time.Time `json:"start_date,omitempty"`
	Periods   int        `json:"periods" validate:"required,min=1"`
}

// Validate validates the PaymentScheduleRequest
func (r *PaymentScheduleRequest) Validate() error {
	if err := r.CalculatePaymentRequest.Validate(); err != nil {
		return err
	}

	if r.Periods < 1 {
		return ierr.NewError("periods must be at least 1").
			WithHint("Please request at least one billing period").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// PaymentScheduleResponse is the projected payment schedule
type PaymentScheduleResponse struct {
	*pricing.Schedule
}

// ValidatePromotionRequest checks a promo code before it is applied
type ValidatePromotionRequest struct {
	Code             string                 `json:"code" validate:"required"`
	OrganizationType types.OrganizationType `json:"organization_type" validate:"required"`
	BaseAmount       decimal.Decimal        `json:"base_amount"`
}

// Validate validates the ValidatePromotionRequest
func (r *ValidatePromotionRequest) Validate() error {
	if r.Code == "" {
		return ierr.NewError("code is required").
			WithHint("Please provide a promotion code").
			Mark(ierr.ErrValidation)
	}

	if err := r.OrganizationType.Validate(); err != nil {
		return err
	}

	return nil
}

// ValidatePromotionResponse is the user-facing eligibility verdict
type ValidatePromotionResponse struct {
	IsValid     bool             `json:"is_valid"`
	Reason      string           `json:"reason,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
	Description string           `json:"description,omitempty"`
}
