package signup

import (
	"time"

	"github.com/sppg-platform/billing/internal/domain/pricing"
	"github.com/sppg-platform/billing/internal/domain/registration"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// Draft is the wizard state of one prospective subscriber. The wizard
// progresses strictly through the step order; each pricing-relevant
// change on the way produces a fresh quote snapshot.
type Draft struct {
	ID          string           `json:"id"`
	CurrentStep types.SignupStep `json:"current_step"`

	PackageID     string             `json:"package_id,omitempty"`
	BillingCycle  types.BillingCycle `json:"billing_cycle,omitempty"`
	PromotionCode string             `json:"promotion_code,omitempty"`
	Registration  *registration.Data `json:"registration,omitempty"`

	// Quote is the breakdown snapshot taken at confirmation
	Quote *pricing.Breakdown `json:"quote,omitempty"`

	PaymentProofURL string `json:"payment_proof_url,omitempty"`
	// SubscriptionID is set when the draft completes into a subscription
	SubscriptionID string `json:"subscription_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnsureStep rejects an operation attempted out of wizard order. A
// draft may redo its current step or any earlier one, but cannot skip
// ahead.
func (d *Draft) EnsureStep(step types.SignupStep) error {
	if step.Index() <= d.CurrentStep.Index() {
		return nil
	}
	return ierr.NewError("signup step out of order").
		WithHintf("Complete the %s step first", d.CurrentStep).
		WithReportableDetails(map[string]any{
			"current_step":   d.CurrentStep,
			"requested_step": step,
		}).
		Mark(ierr.ErrInvalidOperation)
}

// Advance moves the draft to the step after completed, unless the
// draft is already further along
func (d *Draft) Advance(completed types.SignupStep) {
	next := completed.NextStep()
	if next.Index() > d.CurrentStep.Index() {
		d.CurrentStep = next
	}
}
