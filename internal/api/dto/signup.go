package dto

import (
	"github.com/sppg-platform/billing/internal/domain/registration"
	"github.com/sppg-platform/billing/internal/domain/signup"
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/sppg-platform/billing/internal/types"
)

// SelectPackageRequest sets the package and billing cycle of a draft
type SelectPackageRequest struct {
	PackageID    string             `json:"package_id" validate:"required"`
	BillingCycle types.BillingCycle `json:"billing_cycle" validate:"required"`
}

// Validate validates the SelectPackageRequest
func (r *SelectPackageRequest) Validate() error {
	if r.PackageID == "" {
		return ierr.NewError("package_id is required").
			WithHint("Please select a package").
			Mark(ierr.ErrValidation)
	}
	return r.BillingCycle.Validate()
}

// SubmitRegistrationRequest fills the registration step of a draft
type SubmitRegistrationRequest struct {
	Registration *registration.Data `json:"registration" validate:"required"`
}

// Validate validates the SubmitRegistrationRequest
func (r *SubmitRegistrationRequest) Validate() error {
	return registration.Validate(r.Registration)
}

// ConfirmSignupRequest finalizes the quote, optionally applying a
// promotion code entered on the confirmation screen
type ConfirmSignupRequest struct {
	PromotionCode string `json:"promotion_code,omitempty"`
}

// SignupDraftResponse is the wizard state returned after every step
type SignupDraftResponse struct {
	*signup.Draft
}
