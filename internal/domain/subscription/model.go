package subscription

import (
	"time"

	"github.com/samber/lo"
	"github.com/sppg-platform/billing/internal/domain/pricing"
	"github.com/sppg-platform/billing/internal/domain/registration"
	"github.com/sppg-platform/billing/internal/types"
)

// Subscription is an SPPG operator account's billing record. The
// breakdown is snapshotted at creation so later rule-table changes
// never alter what a customer was quoted.
type Subscription struct {
	ID        string            `json:"id"`
	PackageID string            `json:"package_id"`
	Tier      types.PackageTier `json:"tier"`

	OrganizationName string                 `json:"organization_name"`
	OrganizationType types.OrganizationType `json:"organization_type"`

	BillingCycle types.BillingCycle       `json:"billing_cycle"`
	Status       types.SubscriptionStatus `json:"status"`

	Registration *registration.Data `json:"registration,omitempty"`
	Breakdown    *pricing.Breakdown `json:"breakdown,omitempty"`

	PaymentProofURL string `json:"payment_proof_url,omitempty"`

	CurrentPeriodStart *time.Time `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
	ActivatedAt        *time.Time `json:"activated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Matches reports whether the subscription passes the filter
func (s *Subscription) Matches(f *types.SubscriptionFilter) bool {
	if f == nil {
		return true
	}

	if len(f.Status) > 0 && !lo.Contains(f.Status, s.Status) {
		return false
	}

	if len(f.Tier) > 0 && !lo.Contains(f.Tier, s.Tier) {
		return false
	}

	if len(f.BillingCycle) > 0 && !lo.Contains(f.BillingCycle, s.BillingCycle) {
		return false
	}

	if len(f.OrganizationType) > 0 && !lo.Contains(f.OrganizationType, s.OrganizationType) {
		return false
	}

	return true
}
