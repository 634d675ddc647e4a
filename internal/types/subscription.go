package types

import (
	ierr "github.com/sppg-platform/billing/internal/errors"
	"github.com/samber/lo"
)

// SubscriptionStatus is the lifecycle state of an SPPG subscription
type SubscriptionStatus string

const (
	// SubscriptionStatusPendingPayment is set on creation, before any
	// payment proof has been submitted
	SubscriptionStatusPendingPayment SubscriptionStatus = "PENDING_PAYMENT"
	// SubscriptionStatusAwaitingVerification is set once a payment proof
	// has been uploaded and staff review is pending
	SubscriptionStatusAwaitingVerification SubscriptionStatus = "AWAITING_VERIFICATION"
	// SubscriptionStatusActive is set when staff activate the account
	SubscriptionStatusActive SubscriptionStatus = "ACTIVE"
	// SubscriptionStatusCancelled is a terminal state
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) Validate() error {
	allowed := []SubscriptionStatus{
		SubscriptionStatusPendingPayment,
		SubscriptionStatusAwaitingVerification,
		SubscriptionStatusActive,
		SubscriptionStatusCancelled,
	}

	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid subscription status").
			WithHint("Invalid subscription status").
			WithReportableDetails(map[string]any{
				"allowed_values": allowed,
				"provided_value": s,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

const (
	filterDefaultLimit = 50
	filterMaxLimit     = 200
)

// SubscriptionFilter narrows admin listing of subscriptions
type SubscriptionFilter struct {
	// Status filters by subscription status
	Status []SubscriptionStatus `json:"status,omitempty" form:"status"`
	// Tier filters by package tier
	Tier []PackageTier `json:"tier,omitempty" form:"tier"`
	// BillingCycle filters by billing cycle
	BillingCycle []BillingCycle `json:"billing_cycle,omitempty" form:"billing_cycle"`
	// OrganizationType filters by organization type
	OrganizationType []OrganizationType `json:"organization_type,omitempty" form:"organization_type"`
	// Limit caps the number of returned records, defaulting to 50
	Limit int `json:"limit,omitempty" form:"limit"`
	// Offset skips the first N matching records
	Offset int `json:"offset,omitempty" form:"offset"`
}

func (f *SubscriptionFilter) Validate() error {
	if f == nil {
		return nil
	}

	if f.Limit < 0 || f.Limit > filterMaxLimit {
		return ierr.NewError("invalid limit").
			WithHintf("Limit must be between 0 and %d", filterMaxLimit).
			Mark(ierr.ErrValidation)
	}

	if f.Offset < 0 {
		return ierr.NewError("invalid offset").
			WithHint("Offset must not be negative").
			Mark(ierr.ErrValidation)
	}

	for _, status := range f.Status {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	for _, tier := range f.Tier {
		if err := tier.Validate(); err != nil {
			return err
		}
	}

	for _, cycle := range f.BillingCycle {
		if err := cycle.Validate(); err != nil {
			return err
		}
	}

	for _, orgType := range f.OrganizationType {
		if err := orgType.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// GetLimit returns the effective page size
func (f *SubscriptionFilter) GetLimit() int {
	if f == nil || f.Limit == 0 {
		return filterDefaultLimit
	}
	return f.Limit
}

// GetOffset returns the effective offset
func (f *SubscriptionFilter) GetOffset() int {
	if f == nil {
		return 0
	}
	return f.Offset
}
