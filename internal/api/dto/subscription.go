package dto

import (
	"github.com/sppg-platform/billing/internal/domain/registration"
	"github.com/sppg-platform/billing/internal/domain/subscription"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// CreateSubscriptionRequest creates a subscription directly from the
// admin surface, bypassing the wizard
type CreateSubscriptionRequest struct {
	PackageID        string                 `json:"package_id" validate:"required"`
	BillingCycle     types.BillingCycle     `json:"billing_cycle" validate:"required"`
	OrganizationType types.OrganizationType `json:"organization_type" validate:"required"`
	Registration     *registration.Data     `json:"registration" validate:"required"`
	PromotionCode    string                 `json:"promotion_code,omitempty"`
}

// Validate validates the CreateSubscriptionRequest
func (r *CreateSubscriptionRequest) Validate() error {
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

	return registration.Validate(r.Registration)
}

// SubmitPaymentProofRequest attaches an uploaded transfer receipt
type SubmitPaymentProofRequest struct {
	ProofURL string `json:"proof_url" validate:"required"`
}

// Validate validates the SubmitPaymentProofRequest
func (r *SubmitPaymentProofRequest) Validate() error {
	if r.ProofURL == "" {
		return ierr.NewError("proof_url is required").
			WithHint("Please upload a payment proof first").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SubscriptionResponse is a subscription as returned to callers
type SubscriptionResponse struct {
	*subscription.Subscription
}

// ListSubscriptionsResponse is a filtered page of subscriptions
type ListSubscriptionsResponse struct {
	Items  []*SubscriptionResponse `json:"items"`
	Total  int                     `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}
